package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrMissingConfig       = errors.New("missing required config")
	ErrUnknown             = errors.New("unknown error")

	// wallet session
	ErrWalletAbsent          = errors.New("wallet provider not available")
	ErrUserRejected          = errors.New("user rejected the request")
	ErrRequestAlreadyPending = errors.New("a request of the same kind is already pending")
	ErrWrongNetwork          = errors.New("wallet is not on the target network")
	ErrNetworkAddFailed      = errors.New("failed to add the target network to the wallet")
	ErrNotConnected          = errors.New("wallet not connected")

	// marketplace
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrMetadataFetchFailed = errors.New("metadata fetch failed")
	ErrUploadFailed        = errors.New("upload failed")
)
