package wallet

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

const (
	MethodAccounts        = "eth_accounts"
	MethodRequestAccounts = "eth_requestAccounts"
	MethodChainId         = "eth_chainId"
	MethodSwitchChain     = "wallet_switchEthereumChain"
	MethodAddChain        = "wallet_addEthereumChain"
	MethodSendTransaction = "eth_sendTransaction"
)

// codes reported by wallet providers
const (
	CodeUserRejected      = 4001
	CodeUnsupportedMethod = 4200
	CodeUnrecognizedChain = 4902
	CodeRequestPending    = -32002
	CodeInternal          = -32603
)

// Provider is an EIP-1193 style wallet endpoint
type Provider interface {
	Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error
	Close()
}

// ProviderError is a failure reported by the wallet with its numeric code
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

func (e *ProviderError) ErrorCode() int {
	return e.Code
}

// Code extracts the provider code from err. go-ethereum rpc errors carry it too.
func Code(err error) (int, bool) {
	var coded interface{ ErrorCode() int }
	if errors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return 0, false
}

type SwitchChainParams struct {
	ChainId string `json:"chainId"`
}

type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type AddChainParams struct {
	ChainId           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	RpcUrls           []string       `json:"rpcUrls"`
	BlockExplorerUrls []string       `json:"blockExplorerUrls"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
}

// TxArgs is the eth_sendTransaction parameter object
type TxArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to,omitempty"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
}

// DomainError turns provider codes into domain errors so the codes never travel
// further than the wallet boundary. Failures without a known code become fallback.
func DomainError(method string, err error, fallback error) error {
	code, ok := Code(err)
	if !ok {
		return xerrors.Errorf("%s: %v: %w", method, err, fallback)
	}
	switch code {
	case CodeUserRejected:
		return xerrors.Errorf("%s: %w", method, domain.ErrUserRejected)
	case CodeRequestPending:
		return xerrors.Errorf("%s: %w", method, domain.ErrRequestAlreadyPending)
	default:
		return xerrors.Errorf("%s: %w", method, fallback)
	}
}
