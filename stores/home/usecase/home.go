package usecase

import (
	"sync"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain/home"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/session"
)

const msgLoadFailed = "Failed to load the marketplace, please try again."

type HomeUseCaseCfg struct {
	Catalog listing.CatalogUseCase
	Session session.SessionUseCase
}

type impl struct {
	catalog listing.CatalogUseCase

	mu    sync.Mutex
	state home.State
	// gen changes on every reset so loads of a previous session are discarded
	gen int
}

func New(cfg *HomeUseCaseCfg) home.UseCase {
	im := &impl{
		catalog: cfg.Catalog,
		state:   emptyState(),
	}
	if cfg.Session != nil {
		cfg.Session.OnInvalidate(im.Reset)
	}
	return im
}

func emptyState() home.State {
	return home.State{Items: []listing.Listing{}}
}

func (im *impl) Load(c bCtx.Ctx) home.State {
	im.mu.Lock()
	im.state.Loading = true
	im.state.Notice = nil
	gen := im.gen
	im.mu.Unlock()

	res, err := im.catalog.ListAll(c)
	if err != nil {
		c.WithField("err", err).Error("catalog.ListAll failed")
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	if gen != im.gen {
		return im.state
	}
	im.state.Loading = false
	if err != nil {
		im.state.Notice = notify.FromError(err, msgLoadFailed)
		return im.state
	}
	im.state.Fetched = true
	im.state.Items = res.Items
	im.state.Faults = res.Faults
	return im.state
}

func (im *impl) State() home.State {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

func (im *impl) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.state = emptyState()
	im.gen++
}
