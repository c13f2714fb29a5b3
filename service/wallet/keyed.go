package wallet

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
)

// TxBackend is the part of ethclient.Client a keyed wallet needs
type TxBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

type keyedProvider struct {
	key     *ecdsa.PrivateKey
	address common.Address
	backend TxBackend
}

// NewKeyed returns a headless provider that signs with a local key. It is
// always authorized and can only operate on the backend's chain.
func NewKeyed(hexKey string, backend TxBackend) (Provider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, xerrors.Errorf("invalid wallet key: %w", err)
	}
	return &keyedProvider{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		backend: backend,
	}, nil
}

func (p *keyedProvider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	var (
		res interface{}
		err error
	)
	switch method {
	case MethodAccounts, MethodRequestAccounts:
		res = []string{p.address.Hex()}
	case MethodChainId:
		res, err = p.chainId(c)
	case MethodSwitchChain:
		res, err = p.switchChain(c, params)
	case MethodAddChain:
		err = &ProviderError{Code: CodeInternal, Message: "keyed wallet cannot register networks"}
	case MethodSendTransaction:
		res, err = p.sendTransaction(c, params)
	default:
		err = &ProviderError{Code: CodeUnsupportedMethod, Message: "unsupported method " + method}
	}
	if err != nil {
		c.WithFields(log.Fields{"err": err, "method": method}).Warn("keyed wallet request failed")
		return err
	}
	if result == nil {
		return nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, result)
}

func (p *keyedProvider) Close() {}

func (p *keyedProvider) chainId(c ctx.Ctx) (string, error) {
	id, err := p.backend.ChainID(c)
	if err != nil {
		return "", err
	}
	return hexutil.EncodeBig(id), nil
}

func (p *keyedProvider) switchChain(c ctx.Ctx, params []interface{}) (interface{}, error) {
	var args SwitchChainParams
	if err := decodeParam(params, &args); err != nil {
		return nil, err
	}
	want, err := hexutil.DecodeBig(args.ChainId)
	if err != nil {
		return nil, &ProviderError{Code: CodeInternal, Message: err.Error()}
	}
	id, err := p.backend.ChainID(c)
	if err != nil {
		return nil, err
	}
	if id.Cmp(want) != 0 {
		return nil, &ProviderError{Code: CodeUnrecognizedChain, Message: "unrecognized chain " + args.ChainId}
	}
	return nil, nil
}

func (p *keyedProvider) sendTransaction(c ctx.Ctx, params []interface{}) (string, error) {
	var args TxArgs
	if err := decodeParam(params, &args); err != nil {
		return "", err
	}
	if args.From != p.address {
		return "", &ProviderError{Code: CodeUserRejected, Message: "unknown account " + args.From.Hex()}
	}
	if args.To == nil {
		return "", &ProviderError{Code: CodeInternal, Message: "contract creation not supported"}
	}

	value := new(big.Int)
	if args.Value != nil {
		value = args.Value.ToInt()
	}

	chainId, err := p.backend.ChainID(c)
	if err != nil {
		return "", err
	}
	nonce, err := p.backend.PendingNonceAt(c, p.address)
	if err != nil {
		return "", err
	}
	gasPrice, err := p.backend.SuggestGasPrice(c)
	if err != nil {
		return "", err
	}
	gas, err := p.backend.EstimateGas(c, ethereum.CallMsg{
		From:  p.address,
		To:    args.To,
		Value: value,
		Data:  args.Data,
	})
	if err != nil {
		return "", err
	}

	tx, err := types.SignNewTx(p.key, types.LatestSignerForChainID(chainId), &types.LegacyTx{
		Nonce:    nonce,
		To:       args.To,
		Value:    value,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     args.Data,
	})
	if err != nil {
		return "", err
	}
	if err := p.backend.SendTransaction(c, tx); err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

func decodeParam(params []interface{}, out interface{}) error {
	if len(params) == 0 {
		return &ProviderError{Code: CodeInternal, Message: "missing params"}
	}
	b, err := json.Marshal(params[0])
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &ProviderError{Code: CodeInternal, Message: err.Error()}
	}
	return nil
}
