package repository

import (
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

type ipfsGatewayReaderRepo struct {
	client     *retryablehttp.Client
	gateway    string
	ctxTimeout time.Duration
}

// NewIpfsGatewayReaderRepo reads content identifiers, optionally followed by a path,
// through an http gateway such as https://gateway.pinata.cloud/ipfs
func NewIpfsGatewayReaderRepo(client *retryablehttp.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{
		client:     client,
		gateway:    strings.TrimRight(gateway, "/"),
		ctxTimeout: timeout,
	}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	c = bCtx.WithValue(c, "cid", cid)
	return fetch(c, r.client, r.ctxTimeout, r.gateway+"/"+strings.TrimLeft(cid, "/"), nil)
}
