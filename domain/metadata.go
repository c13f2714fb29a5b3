package domain

import (
	"github.com/x-xyz/chimera/base/ctx"
)

// Metadata is the off-chain document a token uri points to
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price,omitempty"`
	Image       string `json:"image"`
}

type MetadataUseCase interface {
	GetFromUrl(ctx.Ctx, string) (*Metadata, error)
}
