package usecase

import (
	"sync"

	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/session"
	"github.com/x-xyz/chimera/service/wallet"
)

type SessionUseCaseCfg struct {
	// Provider is nil when no wallet is available
	Provider wallet.Provider
	Network  session.Network
	// Watcher reports account changes, optional
	Watcher *wallet.AccountsWatcher
}

type impl struct {
	provider wallet.Provider
	network  session.Network
	watcher  *wallet.AccountsWatcher

	subscribeOnce sync.Once

	// mutex protected members
	mu         sync.Mutex
	current    session.Session
	connecting bool
	hooks      []func()
}

func New(cfg *SessionUseCaseCfg) session.SessionUseCase {
	im := &impl{
		provider: cfg.Provider,
		network:  cfg.Network,
		watcher:  cfg.Watcher,
	}
	im.current.WalletPresent = im.DetectWallet()
	return im
}

func (im *impl) DetectWallet() bool {
	return im.provider != nil
}

func (im *impl) Current() session.Session {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.current
}

func (im *impl) OnInvalidate(hook func()) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.hooks = append(im.hooks, hook)
}

func (im *impl) Close() {
	if im.watcher != nil {
		im.watcher.Stop()
	}
	if im.provider != nil {
		im.provider.Close()
	}
}

func (im *impl) CheckExistingConnection(c ctx.Ctx) (session.Session, error) {
	if !im.DetectWallet() {
		return session.Session{}, nil
	}
	im.subscribe()

	accounts, err := im.accounts(c, wallet.MethodAccounts)
	if err != nil {
		c.WithField("err", err).Error("accounts failed")
		return im.Current(), err
	}
	chainId, err := im.chainId(c)
	if err != nil {
		c.WithField("err", err).Error("chainId failed")
		return im.Current(), err
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.current = session.Session{
		WalletPresent:   true,
		NetworkID:       chainId,
		IsTargetNetwork: chainId.Equals(im.network.ChainIdHex),
	}
	if len(accounts) > 0 {
		im.current.ConnectedAddress = accounts[0]
	}
	return im.current, nil
}

func (im *impl) Connect(c ctx.Ctx) (session.Session, error) {
	if !im.DetectWallet() {
		return session.Session{}, domain.ErrWalletAbsent
	}

	im.mu.Lock()
	if im.connecting {
		im.mu.Unlock()
		return im.Current(), xerrors.Errorf("connect in flight: %w", domain.ErrRequestAlreadyPending)
	}
	im.connecting = true
	previous := im.current
	im.mu.Unlock()
	defer func() {
		im.mu.Lock()
		im.connecting = false
		im.mu.Unlock()
	}()

	im.subscribe()

	if err := im.EnsureNetwork(c); err != nil {
		c.WithField("err", err).Error("EnsureNetwork failed")
		return im.Current(), err
	}

	if previous.IsConnected() {
		return im.Current(), nil
	}

	// authorized earlier, no prompt needed
	accounts, err := im.accounts(c, wallet.MethodAccounts)
	if err != nil {
		c.WithField("err", err).Error("accounts failed")
		return im.Current(), err
	}
	if len(accounts) == 0 {
		accounts, err = im.accounts(c, wallet.MethodRequestAccounts)
		if err != nil {
			c.WithField("err", err).Error("requestAccounts failed")
			return im.Current(), err
		}
	}
	if len(accounts) == 0 {
		return im.Current(), xerrors.Errorf("wallet returned no accounts: %w", domain.ErrUnknown)
	}

	c.WithField("address", accounts[0]).Info("wallet connected")
	return im.invalidate(c)
}

func (im *impl) EnsureNetwork(c ctx.Ctx) error {
	if !im.DetectWallet() {
		return domain.ErrWalletAbsent
	}

	chainId, err := im.chainId(c)
	if err != nil {
		return err
	}
	if chainId.Equals(im.network.ChainIdHex) {
		im.setNetwork(chainId)
		return nil
	}

	c.WithFields(log.Fields{
		"chainId": chainId,
		"target":  im.network.ChainIdHex,
	}).Warn("wrong network, switching")

	err = im.switchChain(c)
	if err == nil {
		im.setNetwork(im.network.ChainIdHex)
		return nil
	}

	code, _ := wallet.Code(err)
	switch code {
	case wallet.CodeUserRejected, wallet.CodeRequestPending:
		return wallet.DomainError(wallet.MethodSwitchChain, err, domain.ErrWrongNetwork)
	case wallet.CodeUnrecognizedChain:
	default:
		c.WithField("err", err).Error("switchChain failed")
		return xerrors.Errorf("%s: %w", wallet.MethodSwitchChain, domain.ErrWrongNetwork)
	}

	if err := im.addChain(c); err != nil {
		c.WithField("err", err).Error("addChain failed")
		return xerrors.Errorf("%s: %w", wallet.MethodAddChain, domain.ErrNetworkAddFailed)
	}
	// the added network is only usable after one more switch
	if err := im.switchChain(c); err != nil {
		c.WithField("err", err).Error("switchChain retry failed")
		return xerrors.Errorf("%s retry: %w", wallet.MethodSwitchChain, domain.ErrNetworkAddFailed)
	}
	im.setNetwork(im.network.ChainIdHex)
	return nil
}

// invalidate drops every piece of session derived state and reads the session again
func (im *impl) invalidate(c ctx.Ctx) (session.Session, error) {
	im.mu.Lock()
	im.current = session.Session{WalletPresent: im.DetectWallet()}
	hooks := append([]func(){}, im.hooks...)
	im.mu.Unlock()

	for _, h := range hooks {
		h()
	}
	return im.CheckExistingConnection(c)
}

func (im *impl) subscribe() {
	if im.watcher == nil {
		return
	}
	im.subscribeOnce.Do(func() {
		wc := ctx.WithValue(ctx.Background(), "component", "accountsWatcher")
		im.watcher.Start(wc, func(accounts []domain.Address) {
			wc.WithField("accounts", accounts).Info("accounts changed, invalidating session")
			if _, err := im.invalidate(wc); err != nil {
				wc.WithField("err", err).Error("invalidate failed")
			}
		})
	})
}

func (im *impl) setNetwork(chainId domain.ChainIdHex) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.current.NetworkID = chainId
	im.current.IsTargetNetwork = chainId.Equals(im.network.ChainIdHex)
}

func (im *impl) accounts(c ctx.Ctx, method string) ([]domain.Address, error) {
	var res []string
	if err := im.provider.Request(c, &res, method); err != nil {
		return nil, wallet.DomainError(method, err, domain.ErrUnknown)
	}
	accounts := make([]domain.Address, 0, len(res))
	for _, a := range res {
		accounts = append(accounts, domain.Address(a))
	}
	return accounts, nil
}

func (im *impl) chainId(c ctx.Ctx) (domain.ChainIdHex, error) {
	var res string
	if err := im.provider.Request(c, &res, wallet.MethodChainId); err != nil {
		return "", wallet.DomainError(wallet.MethodChainId, err, domain.ErrUnknown)
	}
	return domain.ChainIdHex(res), nil
}

func (im *impl) switchChain(c ctx.Ctx) error {
	return im.provider.Request(c, nil, wallet.MethodSwitchChain, wallet.SwitchChainParams{
		ChainId: string(im.network.ChainIdHex),
	})
}

func (im *impl) addChain(c ctx.Ctx) error {
	n := im.network
	return im.provider.Request(c, nil, wallet.MethodAddChain, wallet.AddChainParams{
		ChainId:           string(n.ChainIdHex),
		ChainName:         n.Name,
		RpcUrls:           []string{n.RpcUrl},
		BlockExplorerUrls: []string{n.ExplorerUrl},
		NativeCurrency: wallet.NativeCurrency{
			Name:     n.Currency.Name,
			Symbol:   n.Currency.Symbol,
			Decimals: n.Currency.Decimals,
		},
	})
}
