package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/service/cache"
	"github.com/x-xyz/chimera/service/cache/provider/primitive"
)

type reverseResolveFunc func(common.Address) (string, error)

type impl struct {
	reverseResolve reverseResolveFunc
	cache          cache.Service
}

// New dials rpc, which must point at a chain with an ENS registry
func New(rpc string, ttl time.Duration) (ENS, error) {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		return nil, err
	}
	return newWithBackend(client, ttl), nil
}

func newWithBackend(backend bind.ContractBackend, ttl time.Duration) *impl {
	return &impl{
		reverseResolve: func(addr common.Address) (string, error) {
			return goens.ReverseResolve(backend, addr)
		},
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   "ensPfx",
			Cache: primitive.NewPrimitive("ens", 8),
		}),
	}
}

// ReverseResolve returns an empty name for addresses without a reverse record
func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := cache.Key("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(address.ToCommon())
		if msg := fmt.Sprint(err); msg == "not a resolver" || msg == "no resolution" {
			name = ""
			return &name, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
