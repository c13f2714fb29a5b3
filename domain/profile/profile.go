package profile

import (
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
)

type View struct {
	Fetched     bool              `json:"fetched"`
	Address     domain.Address    `json:"address,omitempty"`
	DisplayName string            `json:"displayName,omitempty"`
	Items       []listing.Listing `json:"items"`
	Count       int               `json:"count"`
	// TotalValue is the display only sum of item prices with three decimals
	TotalValue string               `json:"totalValue"`
	Notice     *notify.Notification `json:"notice,omitempty"`
}

type UseCase interface {
	Load(c ctx.Ctx) View
	State() View
	Reset()
}
