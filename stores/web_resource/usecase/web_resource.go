package usecase

import (
	"encoding/json"
	"net/url"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ipfs"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader domain.WebResourceReaderRepository
	// IpfsReader takes a content identifier with an optional path, nil reads ipfs
	// references through HttpReader on Gateway
	IpfsReader domain.WebResourceReaderRepository
	Gateway    string
}

type webResourceUseCase struct {
	httpReader domain.WebResourceReaderRepository
	ipfsReader domain.WebResourceReaderRepository
	gateway    string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	gateway := cfg.Gateway
	if len(gateway) == 0 {
		gateway = ipfs.DefaultGateway
	}
	return &webResourceUseCase{
		httpReader: cfg.HttpReader,
		ipfsReader: cfg.IpfsReader,
		gateway:    gateway,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	var data []byte
	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.readIpfs(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}
	if err == nil {
		return data, nil
	}

	// gateway urls can still be served by the configured ipfs reader
	if pUrl.Scheme != "ipfs" && u.ipfsReader != nil {
		if cid, ok := ipfs.CID(rawUrl); ok {
			c.WithFields(log.Fields{
				"url": rawUrl,
				"cid": cid,
			}).Info("falling back to ipfs")
			if data, ferr := u.ipfsReader.Get(c, cid); ferr == nil {
				return data, nil
			}
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Error("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) readIpfs(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	if u.ipfsReader == nil {
		return u.httpReader.Get(c, ipfs.NormalizeWith(u.gateway, rawUrl))
	}
	cid, ok := ipfs.CID(rawUrl)
	if !ok {
		return nil, domain.ErrBadParamInput
	}
	return u.ipfsReader.Get(c, cid)
}
