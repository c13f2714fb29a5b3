// Package container builds the object graph shared by the api server and the cli
// from the loaded viper config.
package container

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"

	"github.com/x-xyz/chimera/base/config"
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ethereum"
	bValidator "github.com/x-xyz/chimera/base/validator"
	"github.com/x-xyz/chimera/domain"
	hcdomain "github.com/x-xyz/chimera/domain/healthcheck"
	"github.com/x-xyz/chimera/domain/home"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/nftpage"
	"github.com/x-xyz/chimera/domain/profile"
	"github.com/x-xyz/chimera/domain/session"
	"github.com/x-xyz/chimera/service/cache"
	"github.com/x-xyz/chimera/service/cache/provider/primitive"
	"github.com/x-xyz/chimera/service/ens"
	"github.com/x-xyz/chimera/service/marketplace"
	"github.com/x-xyz/chimera/service/pinata"
	"github.com/x-xyz/chimera/service/wallet"
	catalog_usecase "github.com/x-xyz/chimera/stores/catalog/usecase"
	hc_repo "github.com/x-xyz/chimera/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/chimera/stores/healthcheck/usecase"
	home_usecase "github.com/x-xyz/chimera/stores/home/usecase"
	listing_usecase "github.com/x-xyz/chimera/stores/listing/usecase"
	metadata_usecase "github.com/x-xyz/chimera/stores/metadata/usecase"
	nftpage_usecase "github.com/x-xyz/chimera/stores/nftpage/usecase"
	profile_usecase "github.com/x-xyz/chimera/stores/profile/usecase"
	session_usecase "github.com/x-xyz/chimera/stores/session/usecase"
	web_resource_repository "github.com/x-xyz/chimera/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/chimera/stores/web_resource/usecase"
)

type Container struct {
	Validate    *validator.Validate
	Session     session.SessionUseCase
	Gateway     listing.Gateway
	Pinata      pinata.Service
	Catalog     listing.CatalogUseCase
	Home        home.UseCase
	Form        listing.FormUseCase
	NftPage     nftpage.UseCase
	Profile     profile.UseCase
	HealthCheck hcdomain.HealthCheckUsecase
	// ENS is nil when ens.rpcUrl is not configured
	ENS ens.ENS

	chain *ethclient.Client
}

// Network is the target chain definition, also registered with wallets that lack it
func Network() session.Network {
	return session.Network{
		ChainIdHex:  domain.ChainIdHex(viper.GetString("chain.chainIdHex")),
		Name:        viper.GetString("chain.name"),
		RpcUrl:      viper.GetString("chain.rpcUrl"),
		ExplorerUrl: viper.GetString("chain.explorerUrl"),
		Currency: session.Currency{
			Name:     viper.GetString("chain.currency.name"),
			Symbol:   viper.GetString("chain.currency.symbol"),
			Decimals: viper.GetInt("chain.currency.decimals"),
		},
	}
}

// New fails fast on missing mandatory config before dialing anything
func New(c ctx.Ctx) (*Container, error) {
	if err := config.Require("pinata.token", "marketplace.artifact"); err != nil {
		c.WithField("err", err).Error("config.Require failed")
		return nil, err
	}
	artifact, err := marketplace.LoadArtifact(viper.GetString("marketplace.artifact"))
	if err != nil {
		c.WithField("err", err).Error("marketplace.LoadArtifact failed")
		return nil, err
	}

	c.Info("init chain client")
	chain, err := ethclient.DialContext(c, viper.GetString("chain.rpcUrl"))
	if err != nil {
		c.WithField("err", err).Error("ethclient.DialContext failed")
		return nil, err
	}

	provider, err := newProvider(c, chain)
	if err != nil {
		chain.Close()
		return nil, err
	}

	var watcher *wallet.AccountsWatcher
	if provider != nil {
		watcher = wallet.NewAccountsWatcher(provider, viper.GetDuration("wallet.pollInterval"))
	}
	sessionUC := session_usecase.New(&session_usecase.SessionUseCaseCfg{
		Provider: provider,
		Network:  Network(),
		Watcher:  watcher,
	})

	gateway := marketplace.New(&marketplace.GatewayCfg{
		Artifact:       artifact,
		Chain:          ethereum.NewThrottledClient(chain, viper.GetInt("chain.maxConcurrentCalls")),
		Wallet:         provider,
		Accounts:       sessionUC,
		ConfirmTimeout: viper.GetDuration("marketplace.confirmTimeout"),
	})

	ipfsGateway := viper.GetString("pinata.gateway")
	httpTimeout := viper.GetDuration("http.timeout")
	pinataService, err := pinata.New(&pinata.PinataCfg{
		Token:   viper.GetString("pinata.token"),
		Gateway: ipfsGateway,
		Timeout: httpTimeout,
	})
	if err != nil {
		sessionUC.Close()
		chain.Close()
		return nil, err
	}

	retryClient := web_resource_repository.NewRetryClient(viper.GetInt("http.retryMax"), httpTimeout)
	webResourceCfg := &web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader: web_resource_repository.NewHttpReaderRepo(retryClient, httpTimeout, nil),
		Gateway:    ipfsGateway,
	}
	if nodeUrl := viper.GetString("ipfs.nodeUrl"); len(nodeUrl) > 0 {
		webResourceCfg.IpfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeUrl), httpTimeout)
	} else if len(ipfsGateway) > 0 {
		webResourceCfg.IpfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(retryClient, ipfsGateway, httpTimeout)
	}

	metadataUC := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		CtxTimeout:  httpTimeout,
		WebResource: web_resource_usecase.NewWebResourceUseCase(webResourceCfg),
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.ttl"),
			Pfx:   "metadataPfx",
			Cache: primitive.NewPrimitive("metadata", viper.GetInt("cache.sizeMb")),
		}),
		Gateway: ipfsGateway,
	})

	catalogUC := catalog_usecase.New(&catalog_usecase.CatalogUseCaseCfg{
		Gateway:  gateway,
		Metadata: metadataUC,
		Workers:  viper.GetInt("catalog.workers"),
	})

	var ensService ens.ENS
	if rpc := viper.GetString("ens.rpcUrl"); len(rpc) > 0 {
		ensService, err = ens.New(rpc, viper.GetDuration("ens.ttl"))
		if err != nil {
			// display names are optional, profiles fall back to the bare address
			c.WithField("err", err).Warn("ens.New failed")
			ensService = nil
		}
	}

	validate := bValidator.New()
	return &Container{
		Validate: validate,
		Session:  sessionUC,
		Gateway:  gateway,
		Pinata:   pinataService,
		Catalog:  catalogUC,
		Home: home_usecase.New(&home_usecase.HomeUseCaseCfg{
			Catalog: catalogUC,
			Session: sessionUC,
		}),
		Form: listing_usecase.NewFormUseCase(&listing_usecase.FormUseCaseCfg{
			Pinata:   pinataService,
			Session:  sessionUC,
			Gateway:  gateway,
			Validate: validate,
		}),
		NftPage: nftpage_usecase.New(&nftpage_usecase.NftPageUseCaseCfg{
			Catalog: catalogUC,
			Gateway: gateway,
			Session: sessionUC,
		}),
		Profile: profile_usecase.New(&profile_usecase.ProfileUseCaseCfg{
			Catalog: catalogUC,
			Session: sessionUC,
			ENS:     ensService,
		}),
		HealthCheck: hc_usecase.New(hc_repo.New(chain)),
		ENS:         ensService,
		chain:       chain,
	}, nil
}

// newProvider picks the headless keyed wallet when a private key is configured, the
// JSON-RPC wallet bridge when wallet.url is set and no wallet otherwise
func newProvider(c ctx.Ctx, chain *ethclient.Client) (wallet.Provider, error) {
	if key := viper.GetString("wallet.privateKey"); len(key) > 0 {
		p, err := wallet.NewKeyed(key, chain)
		if err != nil {
			c.WithField("err", err).Error("wallet.NewKeyed failed")
			return nil, err
		}
		return p, nil
	}
	if url := viper.GetString("wallet.url"); len(url) > 0 {
		return wallet.NewRPC(c, url)
	}
	c.Warn("no wallet configured")
	return nil, nil
}

func (ct *Container) Close() {
	ct.Session.Close()
	ct.chain.Close()
}
