package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func AddressFrom(a common.Address) Address {
	return Address(a.Hex())
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports an unset or zero address
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// TokenId is the decimal representation of an on-chain token id
type TokenId string

func TokenIdFrom(i *big.Int) TokenId {
	if i == nil {
		return ""
	}
	return TokenId(i.String())
}

func (i TokenId) String() string {
	return string(i)
}

// ToBigInt parses a positive token id
func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() <= 0 {
		return nil, xerrors.Errorf("invalid token id %q: %w", i, ErrBadParamInput)
	}
	return id, nil
}

// ChainIdHex is a chain identifier in the wallet's hex notation, e.g. 0xaa36a7
type ChainIdHex string

// Equals compares numerically so 0x0aa36a7 and 0xAA36A7 match
func (c ChainIdHex) Equals(o ChainIdHex) bool {
	a, ok1 := new(big.Int).SetString(strings.TrimPrefix(strings.ToLower(string(c)), "0x"), 16)
	b, ok2 := new(big.Int).SetString(strings.TrimPrefix(strings.ToLower(string(o)), "0x"), 16)
	if !ok1 || !ok2 {
		return strings.EqualFold(string(c), string(o))
	}
	return a.Cmp(b) == 0
}

type TxHash string
