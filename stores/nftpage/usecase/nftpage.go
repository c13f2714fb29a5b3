package usecase

import (
	"sync"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/nftpage"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/session"
)

const (
	MsgLoadFailed = "Failed to load this NFT, please try again."
	MsgBought     = "You successfully bought the NFT!"
	MsgUpdated    = "You successfully updated the NFT!"
)

type NftPageUseCaseCfg struct {
	Catalog listing.CatalogUseCase
	Gateway listing.Gateway
	Session session.SessionUseCase
}

type impl struct {
	catalog listing.CatalogUseCase
	gateway listing.Gateway
	session session.SessionUseCase

	mu   sync.Mutex
	view nftpage.View
	// gen changes on every reset so loads of a previous session are discarded
	gen int
}

func New(cfg *NftPageUseCaseCfg) nftpage.UseCase {
	im := &impl{
		catalog: cfg.Catalog,
		gateway: cfg.Gateway,
		session: cfg.Session,
	}
	cfg.Session.OnInvalidate(im.Reset)
	return im
}

func (im *impl) State() nftpage.View {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.view
}

func (im *impl) Reset() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.view = nftpage.View{}
	im.gen++
}

func (im *impl) generation() int {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.gen
}

// set stores v unless the page was reset after gen was taken
func (im *impl) set(gen int, v nftpage.View) nftpage.View {
	im.mu.Lock()
	defer im.mu.Unlock()
	if gen != im.gen {
		return im.view
	}
	im.view = v
	return v
}

// notice keeps the current view and replaces its notification
func (im *impl) notice(n *notify.Notification) nftpage.View {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.view.Notice = n
	return im.view
}

func (im *impl) Load(c bCtx.Ctx, tokenID domain.TokenId) nftpage.View {
	gen := im.generation()
	l, err := im.catalog.Get(c, tokenID)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenID, "err": err}).Error("catalog.Get failed")
		return im.set(gen, nftpage.View{Notice: notify.FromError(err, MsgLoadFailed)})
	}

	viewer := im.session.Current().ConnectedAddress
	v := nftpage.View{
		Fetched:       true,
		Listing:       l,
		ViewerAddress: viewer,
	}
	if !viewer.IsEmpty() {
		v.IsOwner = viewer.Equals(l.Owner) || viewer.Equals(l.Seller)
		v.ListedByViewer = v.IsOwner && l.Owner.Equals(im.gateway.Address())
	}
	return im.set(gen, v)
}

func (im *impl) Buy(c bCtx.Ctx, tokenID domain.TokenId) nftpage.View {
	return im.transact(c, tokenID, MsgBought, func() (listing.Transaction, error) {
		// the contract checks the paid value against its own record, not the metadata price
		r, err := im.gateway.GetListing(c, tokenID)
		if err != nil {
			return nil, err
		}
		im.notice(notify.Info("Buying the NFT... Please Wait"))
		return im.gateway.ExecuteSale(c, tokenID, r.PriceWei)
	})
}

func (im *impl) ToggleListing(c bCtx.Ctx, tokenID domain.TokenId) nftpage.View {
	return im.transact(c, tokenID, MsgUpdated, func() (listing.Transaction, error) {
		im.notice(notify.Info("Updating the NFT... Please Wait"))
		return im.gateway.ToggleListingStatus(c, tokenID)
	})
}

func (im *impl) transact(c bCtx.Ctx, tokenID domain.TokenId, success string, submit func() (listing.Transaction, error)) nftpage.View {
	c = bCtx.WithValue(c, "tokenId", tokenID)
	if _, err := im.session.Connect(c); err != nil {
		c.WithField("err", err).Error("session.Connect failed")
		return im.notice(notify.FromError(err, ""))
	}
	tx, err := submit()
	if err != nil {
		c.WithField("err", err).Error("submit failed")
		return im.notice(notify.FromError(err, ""))
	}
	if err := tx.Wait(c); err != nil {
		c.WithFields(log.Fields{"hash": tx.Hash(), "err": err}).Error("tx.Wait failed")
		return im.notice(notify.FromError(err, ""))
	}

	v := im.Load(c, tokenID)
	if v.Notice != nil {
		return v
	}
	return im.notice(notify.Success(success))
}
