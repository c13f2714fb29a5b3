package pinata

import (
	"errors"
	"io"

	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

var (
	ErrRequestFailed = errors.New("request failed")
	// ErrInvalidKeyValue is returned for metadata values pinata cannot index
	ErrInvalidKeyValue = errors.New("invalid key value")
)

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// WithMetadata names the pin and attaches searchable key values
func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		for k, v := range metadata.KeyValues {
			switch v.(type) {
			case string, bool, int, int64, float64:
			default:
				return xerrors.Errorf("%s is %T: %w", k, v, ErrInvalidKeyValue)
			}
		}
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

// Service pins content and reports a gateway url. Uploads are single shot, a
// failure is reported in the result and never retried.
type Service interface {
	UploadFile(c ctx.Ctx, file io.Reader, filename string, opts ...Options) domain.UploadResult
	UploadJSON(c ctx.Ctx, document interface{}, opts ...Options) domain.UploadResult
}
