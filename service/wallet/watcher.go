package wallet

import (
	"strings"
	"sync"
	"time"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/goroutine"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/domain"
)

// AccountsWatcher polls eth_accounts and reports when the authorized set changes.
// Wallet bridges reached over plain JSON-RPC cannot push accountsChanged.
type AccountsWatcher struct {
	provider Provider
	interval time.Duration

	once   sync.Once
	cancel func()
	done   <-chan *goroutine.PanicEvent
}

func NewAccountsWatcher(p Provider, interval time.Duration) *AccountsWatcher {
	return &AccountsWatcher{provider: p, interval: interval}
}

// Start begins polling. onChange runs on the watcher goroutine; only the first
// call to Start has any effect.
func (w *AccountsWatcher) Start(c ctx.Ctx, onChange func([]domain.Address)) {
	w.once.Do(func() {
		c, cancel := ctx.WithCancel(c)
		w.cancel = cancel
		w.done = goroutine.RecoverableGo(func() {
			w.loop(c, onChange)
		}, goroutine.WithName("accounts-watcher"), goroutine.WithLogger(c.Logger))
	})
}

// Stop ends polling and waits for the loop to exit
func (w *AccountsWatcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *AccountsWatcher) loop(c ctx.Ctx, onChange func([]domain.Address)) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last, err := w.accounts(c)
	known := err == nil
	if err != nil {
		c.WithField("err", err).Warn("initial eth_accounts failed")
	}

	for {
		select {
		case <-c.Done():
			return
		case <-ticker.C:
		}

		accounts, err := w.accounts(c)
		if err != nil {
			c.WithField("err", err).Warn("eth_accounts failed")
			continue
		}
		if !known {
			last, known = accounts, true
			continue
		}
		if sameAccounts(last, accounts) {
			continue
		}
		c.WithFields(log.Fields{"from": last, "to": accounts}).Info("accounts changed")
		last = accounts
		onChange(accounts)
	}
}

func (w *AccountsWatcher) accounts(c ctx.Ctx) ([]domain.Address, error) {
	var res []string
	if err := w.provider.Request(c, &res, MethodAccounts); err != nil {
		return nil, err
	}
	accounts := make([]domain.Address, 0, len(res))
	for _, a := range res {
		accounts = append(accounts, domain.Address(a))
	}
	return accounts, nil
}

func sameAccounts(a, b []domain.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(string(a[i]), string(b[i])) {
			return false
		}
	}
	return true
}
