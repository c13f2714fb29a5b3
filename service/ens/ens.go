package ens

import (
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

// ENS looks up display names for wallet addresses
type ENS interface {
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
