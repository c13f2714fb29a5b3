package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/chimera/domain"
)

// ThrottledClient bounds the number of in-flight rpc calls, catalog batches issue one
// tokenURI read per listing and public endpoints rate limit bursts
type ThrottledClient struct {
	client domain.EthClientRepo
	tokens chan struct{}
}

// NewThrottledClient allows n concurrent calls, n <= 0 disables throttling
func NewThrottledClient(client domain.EthClientRepo, n int) domain.EthClientRepo {
	if n <= 0 {
		return client
	}
	return &ThrottledClient{
		client: client,
		tokens: make(chan struct{}, n),
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.before(ctx); err != nil {
		return 0, err
	}
	defer c.after()
	return c.client.BlockNumber(ctx)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if err := c.before(ctx); err != nil {
		return nil, err
	}
	defer c.after()
	return c.client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if err := c.before(ctx); err != nil {
		return nil, err
	}
	defer c.after()
	return c.client.TransactionReceipt(ctx, hash)
}

func (c *ThrottledClient) before(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.tokens <- struct{}{}:
		return nil
	}
}

func (c *ThrottledClient) after() {
	<-c.tokens
}
