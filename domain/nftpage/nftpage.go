package nftpage

import (
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
)

type View struct {
	Fetched       bool             `json:"fetched"`
	Listing       *listing.Listing `json:"listing,omitempty"`
	ViewerAddress domain.Address   `json:"viewerAddress,omitempty"`
	// IsOwner is set when the viewer is the owner or the seller
	IsOwner bool `json:"isOwner"`
	// ListedByViewer is set when the viewer owns the token and it is escrowed by the marketplace
	ListedByViewer bool                 `json:"listedByViewer"`
	Notice         *notify.Notification `json:"notice,omitempty"`
}

type UseCase interface {
	Load(c ctx.Ctx, tokenID domain.TokenId) View
	// Buy pays the on-chain listing price of tokenID
	Buy(c ctx.Ctx, tokenID domain.TokenId) View
	ToggleListing(c ctx.Ctx, tokenID domain.TokenId) View
	State() View
	Reset()
}
