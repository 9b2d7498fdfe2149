package models

import "errors"

// UserRejectedCode is the provider error code for a request denied by the user.
const UserRejectedCode = 4001

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrWalletNotInstalled is returned when no wallet provider is configured.
	ErrWalletNotInstalled = errors.New("wallet provider not installed")

	// ErrUserRejected is returned when the user denies the account request.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrSuperseded is returned when a newer call of the same action replaced this one.
	ErrSuperseded = errors.New("request superseded")
)
