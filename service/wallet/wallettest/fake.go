// Package wallettest provides a scriptable in-memory wallet provider.
package wallettest

import (
	"encoding/json"
	"sync"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/service/wallet"
)

type Handler func(params []interface{}) (interface{}, error)

type Call struct {
	Method string
	Params []interface{}
}

// Provider answers requests from per method handlers and records every call.
// Methods without a handler fail with code 4200.
type Provider struct {
	mu       sync.Mutex
	handlers map[string]Handler
	calls    []Call
}

func New() *Provider {
	return &Provider{handlers: map[string]Handler{}}
}

func (p *Provider) Handle(method string, h Handler) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[method] = h
	return p
}

// Returns answers method with a fixed value
func (p *Provider) Returns(method string, v interface{}) *Provider {
	return p.Handle(method, func([]interface{}) (interface{}, error) { return v, nil })
}

// Fails answers method with a provider error
func (p *Provider) Fails(method string, code int) *Provider {
	return p.Handle(method, func([]interface{}) (interface{}, error) {
		return nil, &wallet.ProviderError{Code: code, Message: method + " failed"}
	})
}

func (p *Provider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	p.mu.Lock()
	p.calls = append(p.calls, Call{Method: method, Params: params})
	h, ok := p.handlers[method]
	p.mu.Unlock()

	if !ok {
		return &wallet.ProviderError{Code: wallet.CodeUnsupportedMethod, Message: "unsupported method " + method}
	}
	res, err := h(params)
	if err != nil {
		return err
	}
	if result == nil || res == nil {
		return nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, result)
}

func (p *Provider) Close() {}

// Calls returns the recorded calls of method, or all calls when method is empty
func (p *Provider) Calls(method string) []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := []Call{}
	for _, c := range p.calls {
		if len(method) == 0 || c.Method == method {
			res = append(res, c)
		}
	}
	return res
}

func (p *Provider) CallCount(method string) int {
	return len(p.Calls(method))
}

// Methods lists the called methods in order
func (p *Provider) Methods() []string {
	res := []string{}
	for _, c := range p.Calls("") {
		res = append(res, c.Method)
	}
	return res
}

func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = nil
}

// Locked returns a wallet on chainId that reports no authorized account until
// eth_requestAccounts authorizes account
func Locked(chainId, account string) *Provider {
	var (
		mu         sync.Mutex
		authorized = []string{}
	)
	return New().
		Returns(wallet.MethodChainId, chainId).
		Handle(wallet.MethodAccounts, func([]interface{}) (interface{}, error) {
			mu.Lock()
			defer mu.Unlock()
			return authorized, nil
		}).
		Handle(wallet.MethodRequestAccounts, func([]interface{}) (interface{}, error) {
			mu.Lock()
			defer mu.Unlock()
			authorized = []string{account}
			return authorized, nil
		})
}
