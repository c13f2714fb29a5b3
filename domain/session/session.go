package session

import (
	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

// Session is the process wide view of the wallet. Controllers only ever hold copies.
type Session struct {
	WalletPresent    bool              `json:"walletPresent"`
	ConnectedAddress domain.Address    `json:"connectedAddress,omitempty"`
	NetworkID        domain.ChainIdHex `json:"networkId,omitempty"`
	IsTargetNetwork  bool              `json:"isTargetNetwork"`
}

func (s Session) IsConnected() bool {
	return !s.ConnectedAddress.IsEmpty()
}

type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Network is the definition registered with a wallet that does not know the target chain
type Network struct {
	ChainIdHex  domain.ChainIdHex `json:"chainId"`
	Name        string            `json:"name"`
	RpcUrl      string            `json:"rpcUrl"`
	ExplorerUrl string            `json:"explorerUrl"`
	Currency    Currency          `json:"currency"`
}

func Sepolia() Network {
	return Network{
		ChainIdHex:  "0xaa36a7",
		Name:        "Sepolia Test Network",
		RpcUrl:      "https://rpc.sepolia.org/",
		ExplorerUrl: "https://sepolia.etherscan.io",
		Currency: Currency{
			Name:     "ETH",
			Symbol:   "ETH",
			Decimals: 18,
		},
	}
}

type SessionUseCase interface {
	// DetectWallet reports whether a wallet provider is reachable
	DetectWallet() bool
	// CheckExistingConnection reads already authorized accounts without prompting
	CheckExistingConnection(c ctx.Ctx) (Session, error)
	// Connect moves the wallet to the target network and requests account access.
	// It never prompts again once connected.
	Connect(c ctx.Ctx) (Session, error)
	EnsureNetwork(c ctx.Ctx) error
	Current() Session
	// OnInvalidate registers a hook run whenever session derived state must be dropped
	OnInvalidate(hook func())
	Close()
}
