package usecase

import (
	"encoding/json"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ipfs"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/service/cache"
)

type MetadataUseCaseCfg struct {
	CtxTimeout  time.Duration
	WebResource domain.WebResourceUseCase
	// Cache is optional, metadata documents are content addressed so entries never go stale
	Cache   cache.Service
	Gateway string
}

type metadataUseCase struct {
	ctxTimeout  time.Duration
	webResource domain.WebResourceUseCase
	cache       cache.Service
	gateway     string
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	gateway := cfg.Gateway
	if len(gateway) == 0 {
		gateway = ipfs.DefaultGateway
	}
	return &metadataUseCase{
		ctxTimeout:  cfg.CtxTimeout,
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
		gateway:     gateway,
	}
}

// GetFromUrl fetches and decodes the metadata document behind rawUrl. The image
// reference is returned in gateway form.
func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, rawUrl string) (*domain.Metadata, error) {
	if len(rawUrl) == 0 {
		return nil, xerrors.Errorf("empty metadata uri: %w", domain.ErrMetadataFetchFailed)
	}
	if u.cache == nil {
		return u.fetch(c, rawUrl)
	}

	res := &domain.Metadata{}
	if err := u.cache.GetByFunc(c, cache.Key("metadata", rawUrl), res, func() (interface{}, error) {
		return u.fetch(c, rawUrl)
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) (*domain.Metadata, error) {
	if u.ctxTimeout > 0 {
		var cancel func()
		c, cancel = bCtx.WithTimeout(c, u.ctxTimeout)
		defer cancel()
	}

	data, err := u.webResource.GetJson(c, ipfs.NormalizeWith(u.gateway, rawUrl))
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("webResource.GetJson failed")
		return nil, xerrors.Errorf("%s: %v: %w", rawUrl, err, domain.ErrMetadataFetchFailed)
	}

	m := &domain.Metadata{}
	if err := json.Unmarshal(data, m); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("%s: %v: %w", rawUrl, err, domain.ErrMetadataFetchFailed)
	}
	m.Image = ipfs.NormalizeWith(u.gateway, m.Image)
	return m, nil
}
