package home

import (
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
)

type State struct {
	Loading bool                 `json:"loading"`
	Fetched bool                 `json:"fetched"`
	Items   []listing.Listing    `json:"items"`
	Faults  []listing.Fault      `json:"faults,omitempty"`
	Notice  *notify.Notification `json:"notice,omitempty"`
}

type UseCase interface {
	// Load fetches every active listing
	Load(c ctx.Ctx) State
	State() State
	Reset()
}
