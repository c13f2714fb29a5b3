package usecase

import (
	"sync"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ethunit"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/profile"
	"github.com/x-xyz/chimera/domain/session"
	"github.com/x-xyz/chimera/service/ens"
)

const MsgLoadFailed = "Failed to load your NFTs, please try again."

type ProfileUseCaseCfg struct {
	Catalog listing.CatalogUseCase
	Session session.SessionUseCase
	// ENS is optional
	ENS ens.ENS
}

type impl struct {
	catalog listing.CatalogUseCase
	session session.SessionUseCase
	ens     ens.ENS

	mu   sync.Mutex
	view profile.View
	// gen changes on every reset so loads of a previous session are discarded
	gen int
}

func New(cfg *ProfileUseCaseCfg) profile.UseCase {
	im := &impl{
		catalog: cfg.Catalog,
		session: cfg.Session,
		ens:     cfg.ENS,
		view:    emptyView(),
	}
	cfg.Session.OnInvalidate(im.Reset)
	return im
}

func emptyView() profile.View {
	return profile.View{
		Items:      []listing.Listing{},
		TotalValue: ethunit.FormatDisplay(0),
	}
}

func (im *impl) State() profile.View {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.view
}

func (im *impl) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.view = emptyView()
	im.gen++
}

func (im *impl) generation() int {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.gen
}

// set stores v unless the view was reset after gen was taken
func (im *impl) set(gen int, v profile.View) profile.View {
	im.mu.Lock()
	defer im.mu.Unlock()
	if gen != im.gen {
		return im.view
	}
	im.view = v
	return v
}

func (im *impl) Load(c bCtx.Ctx) profile.View {
	// a fresh connection resets the view, the generation is taken after it
	sess, err := im.session.Connect(c)
	gen := im.generation()
	if err != nil {
		c.WithField("err", err).Error("session.Connect failed")
		v := emptyView()
		v.Notice = notify.FromError(err, MsgLoadFailed)
		return im.set(gen, v)
	}

	res, err := im.catalog.ListMine(c)
	if err != nil {
		c.WithField("err", err).Error("catalog.ListMine failed")
		v := emptyView()
		v.Address = sess.ConnectedAddress
		v.Notice = notify.FromError(err, MsgLoadFailed)
		return im.set(gen, v)
	}

	prices := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		prices = append(prices, item.Price)
	}
	v := profile.View{
		Fetched:     true,
		Address:     sess.ConnectedAddress,
		DisplayName: im.displayName(c, sess),
		Items:       res.Items,
		Count:       len(res.Items),
		TotalValue:  ethunit.FormatDisplay(ethunit.DisplaySum(prices)),
	}
	return im.set(gen, v)
}

func (im *impl) displayName(c bCtx.Ctx, sess session.Session) string {
	if im.ens == nil {
		return ""
	}
	name, err := im.ens.ReverseResolve(c, sess.ConnectedAddress)
	if err != nil {
		c.WithField("err", err).Warn("ens.ReverseResolve failed")
		return ""
	}
	return name
}
