package repository

import (
	"time"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	hcdomain "github.com/x-xyz/chimera/domain/healthcheck"
)

type impl struct {
	client domain.EthClientRepo
}

// New creates a health check repo backed by the chain rpc
func New(client domain.EthClientRepo) hcdomain.HealthCheckRepo {
	return &impl{
		client: client,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.client.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("ping chain error")
		return err
	}
	return nil
}
