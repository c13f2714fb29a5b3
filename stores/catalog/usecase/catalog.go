package usecase

import (
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ethunit"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/base/metrics"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
)

const defaultWorkers = 10

type CatalogUseCaseCfg struct {
	Gateway  listing.Gateway
	Metadata domain.MetadataUseCase
	// Workers bounds concurrent metadata fetches of one batch
	Workers int
}

type impl struct {
	gateway  listing.Gateway
	metadata domain.MetadataUseCase
	workers  int
	metrics  metrics.Service
}

func New(cfg *CatalogUseCaseCfg) listing.CatalogUseCase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &impl{
		gateway:  cfg.Gateway,
		metadata: cfg.Metadata,
		workers:  workers,
		metrics:  metrics.New("catalog"),
	}
}

func (im *impl) ListAll(c bCtx.Ctx) (*listing.CatalogResult, error) {
	records, err := im.gateway.ListAllListings(c)
	if err != nil {
		c.WithField("err", err).Error("gateway.ListAllListings failed")
		return nil, err
	}
	return im.Resolve(c, records), nil
}

func (im *impl) ListMine(c bCtx.Ctx) (*listing.CatalogResult, error) {
	records, err := im.gateway.GetMyListings(c)
	if err != nil {
		c.WithField("err", err).Error("gateway.GetMyListings failed")
		return nil, err
	}
	return im.Resolve(c, records), nil
}

func (im *impl) Get(c bCtx.Ctx, tokenID domain.TokenId) (*listing.Listing, error) {
	r, err := im.gateway.GetListing(c, tokenID)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenID, "err": err}).Error("gateway.GetListing failed")
		return nil, err
	}
	return im.resolve(c, *r)
}

type resolved struct {
	idx     int
	listing *listing.Listing
	err     error
}

// Resolve fetches metadata of every record concurrently and waits for all of them
func (im *impl) Resolve(c bCtx.Ctx, records []listing.Record) *listing.CatalogResult {
	defer im.metrics.BumpTime("resolve.time").End()

	res := &listing.CatalogResult{Items: []listing.Listing{}}
	if len(records) == 0 {
		return res
	}

	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(records)))
	defer b.Close()
	for i := range records {
		idx := i
		b.Queue(func() (interface{}, error) {
			l, err := im.resolve(c, records[idx])
			return &resolved{idx: idx, listing: l, err: err}, nil
		})
	}
	b.QueueComplete()

	all := make([]*resolved, len(records))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("batch result failed")
			continue
		}
		r := ret.Value().(*resolved)
		all[r.idx] = r
	}

	for i, r := range all {
		if r == nil {
			r = &resolved{idx: i, err: domain.ErrMetadataFetchFailed}
		}
		if r.err != nil {
			im.metrics.BumpSum("item.dropped", 1)
			c.WithFields(log.Fields{
				"tokenId": records[i].TokenID,
				"err":     r.err,
			}).Warn("dropping listing without metadata")
			res.Faults = append(res.Faults, listing.Fault{TokenID: records[i].TokenID, Reason: r.err.Error()})
			continue
		}
		res.Items = append(res.Items, *r.listing)
	}
	return res
}

func (im *impl) resolve(c bCtx.Ctx, r listing.Record) (*listing.Listing, error) {
	uri, err := im.gateway.TokenURI(c, r.TokenID)
	if err != nil {
		return nil, xerrors.Errorf("tokenURI %s: %v: %w", r.TokenID, err, domain.ErrMetadataFetchFailed)
	}
	meta, err := im.metadata.GetFromUrl(c, uri)
	if err != nil {
		return nil, err
	}
	return &listing.Listing{
		TokenID:         r.TokenID,
		Price:           ethunit.FromWei(r.PriceWei),
		Seller:          r.Seller,
		Owner:           r.Owner,
		MetadataURI:     uri,
		Name:            meta.Name,
		Description:     meta.Description,
		ImageURI:        meta.Image,
		CurrentlyListed: r.CurrentlyListed,
	}, nil
}
