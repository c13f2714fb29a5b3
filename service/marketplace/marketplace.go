package marketplace

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/base/metrics"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/session"
	"github.com/x-xyz/chimera/service/wallet"
)

const (
	defaultConfirmTimeout = 5 * time.Minute
	defaultPollInterval   = time.Second
	maxPollInterval       = 15 * time.Second
)

// AccountSource yields the address reads are issued from and writes are signed by
type AccountSource interface {
	Current() session.Session
}

type GatewayCfg struct {
	Artifact *Artifact
	// Chain serves reads and receipts
	Chain domain.EthClientRepo
	// Wallet signs and submits writes
	Wallet         wallet.Provider
	Accounts       AccountSource
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// listedToken mirrors the contract's ListedToken tuple
type listedToken struct {
	TokenID         *big.Int
	Owner           common.Address
	Seller          common.Address
	Price           *big.Int
	CurrentlyListed bool
}

func (t listedToken) toRecord() listing.Record {
	return listing.Record{
		TokenID:         domain.TokenIdFrom(t.TokenID),
		Owner:           domain.AddressFrom(t.Owner),
		Seller:          domain.AddressFrom(t.Seller),
		PriceWei:        t.Price,
		CurrentlyListed: t.CurrentlyListed,
	}
}

type gateway struct {
	address        common.Address
	abi            abi.ABI
	chain          domain.EthClientRepo
	wallet         wallet.Provider
	accounts       AccountSource
	confirmTimeout time.Duration
	pollInterval   time.Duration
	metrics        metrics.Service
}

func New(cfg *GatewayCfg) listing.Gateway {
	g := &gateway{
		address:        cfg.Artifact.Address,
		abi:            cfg.Artifact.ABI,
		chain:          cfg.Chain,
		wallet:         cfg.Wallet,
		accounts:       cfg.Accounts,
		confirmTimeout: cfg.ConfirmTimeout,
		pollInterval:   cfg.PollInterval,
		metrics:        metrics.New("marketplace"),
	}
	if g.confirmTimeout <= 0 {
		g.confirmTimeout = defaultConfirmTimeout
	}
	if g.pollInterval <= 0 {
		g.pollInterval = defaultPollInterval
	}
	return g
}

func (g *gateway) Address() domain.Address {
	return domain.AddressFrom(g.address)
}

func (g *gateway) ListAllListings(c bCtx.Ctx) ([]listing.Record, error) {
	return g.listTokens(c, methodMarketTokens)
}

func (g *gateway) GetMyListings(c bCtx.Ctx) ([]listing.Record, error) {
	if !g.accounts.Current().IsConnected() {
		return nil, domain.ErrNotConnected
	}
	return g.listTokens(c, methodMyNFTs)
}

func (g *gateway) GetListing(c bCtx.Ctx, tokenID domain.TokenId) (*listing.Record, error) {
	id, err := tokenID.ToBigInt()
	if err != nil {
		return nil, err
	}
	out, err := g.call(c, methodListedToken, id)
	if err != nil {
		return nil, err
	}
	t := *abi.ConvertType(out[0], new(listedToken)).(*listedToken)
	if t.TokenID == nil || t.TokenID.Sign() == 0 || t.Owner == (common.Address{}) {
		return nil, xerrors.Errorf("token %s: %w", tokenID, domain.ErrNotFound)
	}
	r := t.toRecord()
	return &r, nil
}

func (g *gateway) GetListingPrice(c bCtx.Ctx) (*big.Int, error) {
	out, err := g.call(c, methodListingPrice)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (g *gateway) TokenURI(c bCtx.Ctx, tokenID domain.TokenId) (string, error) {
	id, err := tokenID.ToBigInt()
	if err != nil {
		return "", err
	}
	out, err := g.call(c, methodTokenURI, id)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (g *gateway) CreateListing(c bCtx.Ctx, metadataURI string, priceWei, feeWei *big.Int) (listing.Transaction, error) {
	return g.transact(c, methodCreateToken, feeWei, metadataURI, priceWei)
}

func (g *gateway) ExecuteSale(c bCtx.Ctx, tokenID domain.TokenId, priceWei *big.Int) (listing.Transaction, error) {
	id, err := tokenID.ToBigInt()
	if err != nil {
		return nil, err
	}
	return g.transact(c, methodExecuteSale, priceWei, id)
}

func (g *gateway) ToggleListingStatus(c bCtx.Ctx, tokenID domain.TokenId) (listing.Transaction, error) {
	id, err := tokenID.ToBigInt()
	if err != nil {
		return nil, err
	}
	return g.transact(c, methodUpdateListing, nil, id)
}

func (g *gateway) listTokens(c bCtx.Ctx, method string) ([]listing.Record, error) {
	out, err := g.call(c, method)
	if err != nil {
		return nil, err
	}
	tokens := *abi.ConvertType(out[0], new([]listedToken)).(*[]listedToken)
	records := make([]listing.Record, 0, len(tokens))
	for _, t := range tokens {
		records = append(records, t.toRecord())
	}
	return records, nil
}

func (g *gateway) call(c bCtx.Ctx, method string, params ...interface{}) ([]interface{}, error) {
	defer g.metrics.BumpTime("call.time", "method", method).End()

	data, err := g.abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		From: g.accounts.Current().ConnectedAddress.ToCommon(),
		To:   &g.address,
		Data: data,
	}
	res, err := g.chain.CallContract(c, msg, nil)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "method": method}).Error("chain.CallContract failed")
		return nil, err
	}
	unpacked, err := g.abi.Unpack(method, res)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "method": method}).Error("abi.Unpack failed")
		return nil, err
	}
	if len(unpacked) == 0 {
		return nil, xerrors.Errorf("%s returned nothing", method)
	}
	return unpacked, nil
}

func (g *gateway) transact(c bCtx.Ctx, method string, value *big.Int, params ...interface{}) (listing.Transaction, error) {
	from := g.accounts.Current().ConnectedAddress
	if from.IsEmpty() {
		return nil, domain.ErrNotConnected
	}

	data, err := g.abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	args := wallet.TxArgs{
		From: from.ToCommon(),
		To:   &g.address,
		Data: data,
	}
	if value != nil {
		args.Value = (*hexutil.Big)(value)
	}

	var hash common.Hash
	if err := g.wallet.Request(c, &hash, wallet.MethodSendTransaction, args); err != nil {
		g.metrics.BumpSum("transact.err", 1, "method", method)
		c.WithFields(log.Fields{"err": err, "method": method}).Error("wallet.SendTransaction failed")
		return nil, wallet.DomainError(method, err, domain.ErrTransactionFailed)
	}

	c.WithFields(log.Fields{"method": method, "hash": hash.Hex()}).Info("transaction submitted")
	return &transaction{
		hash:         hash,
		method:       method,
		chain:        g.chain,
		timeout:      g.confirmTimeout,
		pollInterval: g.pollInterval,
		metrics:      g.metrics,
	}, nil
}
