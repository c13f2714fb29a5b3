package notify

import (
	"errors"

	"github.com/x-xyz/chimera/domain"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Notification is a transient user facing message kept in view state
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Info(msg string) *Notification {
	return &Notification{Level: LevelInfo, Message: msg}
}

func Success(msg string) *Notification {
	return &Notification{Level: LevelSuccess, Message: msg}
}

func Warn(msg string) *Notification {
	return &Notification{Level: LevelWarn, Message: msg}
}

func Error(msg string) *Notification {
	return &Notification{Level: LevelError, Message: msg}
}

const (
	MsgWalletAbsent   = "No wallet found! Please install a wallet to continue"
	MsgUserRejected   = "Please connect with your wallet to proceed"
	MsgPending        = "Already processing request to connect accounts. Please confirm the request in your wallet."
	MsgWrongNetwork   = "Failed to switch network. Please switch manually."
	MsgNetworkAdd     = "Failed to add the network. Please add it manually."
	MsgNotConnected   = "Please connect your wallet first."
	MsgNotFound       = "This NFT does not exist."
	MsgGenericFailure = "Error, please check console for more details"
)

var byError = []struct {
	err error
	n   Notification
}{
	{domain.ErrWalletAbsent, Notification{LevelError, MsgWalletAbsent}},
	{domain.ErrUserRejected, Notification{LevelError, MsgUserRejected}},
	{domain.ErrRequestAlreadyPending, Notification{LevelWarn, MsgPending}},
	{domain.ErrWrongNetwork, Notification{LevelError, MsgWrongNetwork}},
	{domain.ErrNetworkAddFailed, Notification{LevelError, MsgNetworkAdd}},
	{domain.ErrNotConnected, Notification{LevelWarn, MsgNotConnected}},
	{domain.ErrNotFound, Notification{LevelError, MsgNotFound}},
}

// FromError maps a wallet, network or transaction failure to a notification.
// Errors outside the session taxonomy are reported with fallback, or a generic
// message when fallback is empty.
func FromError(err error, fallback string) *Notification {
	if err == nil {
		return nil
	}
	for _, e := range byError {
		if errors.Is(err, e.err) {
			n := e.n
			return &n
		}
	}
	if len(fallback) == 0 {
		fallback = MsgGenericFailure
	}
	return Error(fallback)
}
