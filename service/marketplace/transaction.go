package marketplace

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/backoff"
	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/base/metrics"
	"github.com/x-xyz/chimera/domain"
)

type transaction struct {
	hash         common.Hash
	method       string
	chain        domain.EthClientRepo
	timeout      time.Duration
	pollInterval time.Duration
	metrics      metrics.Service
}

func (t *transaction) Hash() domain.TxHash {
	return domain.TxHash(t.hash.Hex())
}

func (t *transaction) Wait(c bCtx.Ctx) error {
	defer t.metrics.BumpTime("wait.time", "method", t.method).End()

	c = bCtx.WithValue(c, "hash", t.hash.Hex())
	waitCtx, cancel := bCtx.WithTimeout(c, t.timeout)
	defer cancel()

	var receipt *types.Receipt
	bo := backoff.NewExponential(t.pollInterval, maxPollInterval)
	err := bo.Poll(waitCtx, 0, func() (bool, error) {
		r, err := t.chain.TransactionReceipt(waitCtx, t.hash)
		if errors.Is(err, ethereum.NotFound) {
			return false, nil
		} else if err != nil {
			return false, err
		}
		receipt = r
		return true, nil
	})
	if err != nil {
		t.metrics.BumpSum("wait.err", 1, "method", t.method)
		c.WithFields(log.Fields{"err": err, "polls": bo.Count()}).Error("waiting for receipt failed")
		return xerrors.Errorf("%s %s: %v: %w", t.method, t.hash.Hex(), err, domain.ErrTransactionFailed)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		t.metrics.BumpSum("wait.err", 1, "method", t.method)
		c.WithField("block", receipt.BlockNumber).Error("transaction reverted")
		return xerrors.Errorf("%s %s reverted: %w", t.method, t.hash.Hex(), domain.ErrTransactionFailed)
	}
	c.WithField("block", receipt.BlockNumber).Info("transaction confirmed")
	return nil
}
