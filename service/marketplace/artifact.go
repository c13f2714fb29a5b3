package marketplace

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/domain"
)

const (
	methodMarketTokens  = "getMarketTokens"
	methodTokenURI      = "tokenURI"
	methodListedToken   = "getListedToken"
	methodMyNFTs        = "getMyNFTs"
	methodListingPrice  = "getListingPrice"
	methodCreateToken   = "createToken"
	methodExecuteSale   = "executeTokenSale"
	methodUpdateListing = "updateListingStatus"
)

var requiredMethods = []string{
	methodMarketTokens,
	methodTokenURI,
	methodListedToken,
	methodMyNFTs,
	methodListingPrice,
	methodCreateToken,
	methodExecuteSale,
	methodUpdateListing,
}

// Artifact is the deployment output describing the marketplace contract
type Artifact struct {
	Address common.Address
	ABI     abi.ABI
}

// LoadArtifact reads a {address, abi} file. A missing file, a zero address or
// an interface lacking any marketplace method is an error.
func LoadArtifact(path string) (*Artifact, error) {
	if len(path) == 0 {
		return nil, xerrors.Errorf("marketplace.artifact is required: %w", domain.ErrMissingConfig)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to read contract artifact %s: %w", path, err)
	}
	return ParseArtifact(b)
}

func ParseArtifact(b []byte) (*Artifact, error) {
	raw := struct {
		Address string          `json:"address"`
		ABI     json.RawMessage `json:"abi"`
	}{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, xerrors.Errorf("malformed contract artifact: %w", err)
	}
	if !common.IsHexAddress(raw.Address) || common.HexToAddress(raw.Address) == (common.Address{}) {
		return nil, xerrors.Errorf("contract artifact has invalid address %q: %w", raw.Address, domain.ErrInvalidAddress)
	}
	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, xerrors.Errorf("malformed contract abi: %w", err)
	}
	for _, m := range requiredMethods {
		if _, ok := parsed.Methods[m]; !ok {
			return nil, xerrors.Errorf("contract abi lacks method %s", m)
		}
	}
	return &Artifact{
		Address: common.HexToAddress(raw.Address),
		ABI:     parsed,
	}, nil
}
