package wallet

import (
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
)

type rpcProvider struct {
	client *rpc.Client
}

// NewRPC connects to a wallet bridge exposing the provider methods over JSON-RPC
func NewRPC(c ctx.Ctx, url string) (Provider, error) {
	client, err := rpc.DialContext(c, url)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "url": url}).Error("rpc.DialContext failed")
		return nil, err
	}
	return &rpcProvider{client: client}, nil
}

func (p *rpcProvider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	if err := p.client.CallContext(c, result, method, params...); err != nil {
		c.WithFields(log.Fields{"err": err, "method": method}).Warn("wallet request failed")
		return err
	}
	return nil
}

func (p *rpcProvider) Close() {
	p.client.Close()
}
