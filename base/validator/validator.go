package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/chimera/base/ethunit"
)

const (
	TagEthAddress = "eth_address"
	// TagEthAmount accepts a positive decimal ETH amount with at most 18 fractional digits
	TagEthAmount = "eth_amount"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidEthAmount reports a positive amount convertible to wei without rounding
func IsValidEthAmount(amount string) bool {
	wei, err := ethunit.ToWei(amount)
	return err == nil && wei.Sign() > 0
}

// New returns a validate instance knowing the eth_address and eth_amount tags
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagEthAddress, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation(TagEthAmount, func(fl validator.FieldLevel) bool {
		return IsValidEthAmount(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
