package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/metrics"
	hcdomain "github.com/x-xyz/chimera/domain/healthcheck"
)

type impl struct {
	repo    hcdomain.HealthCheckRepo
	metrics metrics.Service
}

// New reports the process healthy while the chain rpc answers
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:    repo,
		metrics: metrics.New("healthcheck"),
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	if err := im.repo.PingChain(context); err != nil {
		im.metrics.BumpSum("chain.down", 1)
		return xerrors.Errorf("chain unreachable: %w", err)
	}
	return nil
}
