package listing

import (
	"math/big"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

// Record is a listing as stored by the marketplace contract
type Record struct {
	TokenID         domain.TokenId
	Owner           domain.Address
	Seller          domain.Address
	PriceWei        *big.Int
	CurrentlyListed bool
}

// Listing joins a Record with the off-chain metadata it points to
type Listing struct {
	TokenID         domain.TokenId `json:"tokenId"`
	Price           string         `json:"price"`
	Seller          domain.Address `json:"seller"`
	Owner           domain.Address `json:"owner"`
	MetadataURI     string         `json:"metadataUri"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ImageURI        string         `json:"image"`
	CurrentlyListed bool           `json:"currentlyListed"`
}

// Transaction is a submitted write
type Transaction interface {
	Hash() domain.TxHash
	// Wait blocks until the transaction is mined. A revert or a polling failure
	// is reported as domain.ErrTransactionFailed.
	Wait(c ctx.Ctx) error
}

// Gateway is the fixed method set of the deployed marketplace contract.
// Prices crossing it are always wei.
type Gateway interface {
	Address() domain.Address

	ListAllListings(c ctx.Ctx) ([]Record, error)
	GetListing(c ctx.Ctx, tokenID domain.TokenId) (*Record, error)
	GetMyListings(c ctx.Ctx) ([]Record, error)
	GetListingPrice(c ctx.Ctx) (*big.Int, error)
	TokenURI(c ctx.Ctx, tokenID domain.TokenId) (string, error)

	CreateListing(c ctx.Ctx, metadataURI string, priceWei, feeWei *big.Int) (Transaction, error)
	ExecuteSale(c ctx.Ctx, tokenID domain.TokenId, priceWei *big.Int) (Transaction, error)
	ToggleListingStatus(c ctx.Ctx, tokenID domain.TokenId) (Transaction, error)
}

// Fault is a record dropped from a catalog fetch
type Fault struct {
	TokenID domain.TokenId `json:"tokenId"`
	Reason  string         `json:"reason"`
}

type CatalogResult struct {
	Items  []Listing `json:"items"`
	Faults []Fault   `json:"faults,omitempty"`
}

// CatalogUseCase resolves records into listings. Records whose metadata
// cannot be fetched are dropped and reported as faults, the rest keep the
// order the contract returned.
type CatalogUseCase interface {
	ListAll(c ctx.Ctx) (*CatalogResult, error)
	ListMine(c ctx.Ctx) (*CatalogResult, error)
	Resolve(c ctx.Ctx, records []Record) *CatalogResult
	Get(c ctx.Ctx, tokenID domain.TokenId) (*Listing, error)
}
