package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ipfs"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/base/metrics"
	"github.com/x-xyz/chimera/domain"
)

const (
	DefaultEndpoint = "https://api.pinata.cloud"
	pinPath         = "/pinning/pinFileToIPFS"
	pinJsonPath     = "/pinning/pinJSONToIPFS"

	defaultFileName = "nftimage"
)

type PinataCfg struct {
	// Token is the bearer credential, required
	Token string
	// Endpoint defaults to DefaultEndpoint
	Endpoint string
	// Gateway defaults to ipfs.DefaultGateway
	Gateway string
	Timeout time.Duration
}

type pinataImpl struct {
	token    string
	endpoint string
	gateway  string
	client   *http.Client
	metrics  metrics.Service
}

func New(cfg *PinataCfg) (Service, error) {
	if len(cfg.Token) == 0 {
		return nil, xerrors.Errorf("pinata.token is required: %w", domain.ErrMissingConfig)
	}
	im := &pinataImpl{
		token:    cfg.Token,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		gateway:  strings.TrimRight(cfg.Gateway, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
		metrics:  metrics.New("pinata"),
	}
	if len(im.endpoint) == 0 {
		im.endpoint = DefaultEndpoint
	}
	if len(im.gateway) == 0 {
		im.gateway = ipfs.DefaultGateway
	}
	return im, nil
}

func (im *pinataImpl) UploadFile(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) domain.UploadResult {
	defer im.metrics.BumpTime("upload_file.time").End()
	hash, err := im.pin(c, file, filename, optFns...)
	if err != nil {
		im.metrics.BumpSum("upload_file.err", 1)
		return domain.UploadFailed(err)
	}
	return domain.UploadSucceeded(im.gatewayUrl(hash))
}

func (im *pinataImpl) UploadJSON(c ctx.Ctx, document interface{}, optFns ...Options) domain.UploadResult {
	defer im.metrics.BumpTime("upload_json.time").End()
	hash, err := im.pinJson(c, document, optFns...)
	if err != nil {
		im.metrics.BumpSum("upload_json.err", 1)
		return domain.UploadFailed(err)
	}
	return domain.UploadSucceeded(im.gatewayUrl(hash))
}

func (im *pinataImpl) gatewayUrl(hash string) string {
	return fmt.Sprintf("%s/%s", im.gateway, hash)
}

func (im *pinataImpl) pin(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}
	if opts.Metadata == nil {
		opts.Metadata = &PinataMetadata{Name: defaultFileName}
	}
	if opts.Options == nil {
		opts.Options = &PinataOptions{CidVersion: CidVersion_1}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.WithField("err", err).Error("io.ReadAll failed")
		return "", err
	}
	if len(filename) == 0 {
		filename = defaultFileName
	}
	if len(filepath.Ext(filename)) == 0 {
		filename += mimetype.Detect(data).Extension()
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", filename); err != nil {
		c.WithField("err", err).Error("w.CreateFormField failed")
		return "", err
	} else if _, err := fw.Write(data); err != nil {
		c.WithField("err", err).Error("fw.Write failed")
		return "", err
	}

	if b, err := json.Marshal(opts.Metadata); err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	} else if err := w.WriteField("pinataMetadata", string(b)); err != nil {
		c.WithField("err", err).Error("w.WriteField failed")
		return "", err
	}

	if b, err := json.Marshal(opts.Options); err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	} else if err := w.WriteField("pinataOptions", string(b)); err != nil {
		c.WithField("err", err).Error("w.WriteField failed")
		return "", err
	}

	if err := w.Close(); err != nil {
		c.WithField("err", err).Error("w.Close failed")
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) pinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	url := fmt.Sprintf("%s%s", im.endpoint, path)

	req, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+im.token)

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "path": path}).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"path":       path,
			"statusCode": resp.StatusCode,
			"errorBody":  string(errorBody),
		}).Error("Request failed")
		return "", xerrors.Errorf("status %d: %w", resp.StatusCode, ErrRequestFailed)
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}
	if len(p.IpfsHash) == 0 {
		c.WithField("path", path).Error("empty IpfsHash")
		return "", xerrors.Errorf("empty IpfsHash: %w", ErrRequestFailed)
	}

	return p.IpfsHash, nil
}
