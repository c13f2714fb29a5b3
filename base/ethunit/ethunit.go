// Package ethunit converts between the decimal ETH strings people read and the
// integer wei amounts the contract expects.
package ethunit

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/domain"
)

// Decimals is the fixed-point scale of the native currency
const Decimals = 18

// ToWei parses a non-negative decimal ETH amount with at most 18 fractional digits.
func ToWei(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return nil, xerrors.Errorf("empty amount: %w", domain.ErrInvalidNumberFormat)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, xerrors.Errorf("amount %q: %w", amount, domain.ErrInvalidNumberFormat)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("negative amount %q: %w", amount, domain.ErrInvalidNumberFormat)
	}
	wei := d.Shift(Decimals)
	if !wei.IsInteger() {
		return nil, xerrors.Errorf("amount %q exceeds %d fractional digits: %w", amount, Decimals, domain.ErrInvalidNumberFormat)
	}
	return wei.BigInt(), nil
}

// FromWei formats wei as a decimal ETH string without trailing zeros.
func FromWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -Decimals).String()
}

// DisplaySum adds decimal ETH strings as floats, skipping unparsable entries.
// The result is rounded for display and must never be converted back into a
// transaction value; use ToWei on the individual amounts instead.
func DisplaySum(amounts []string) float64 {
	sum := 0.0
	for _, a := range amounts {
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			continue
		}
		sum += d.InexactFloat64()
	}
	return sum
}

// FormatDisplay renders a display value with three decimals
func FormatDisplay(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
