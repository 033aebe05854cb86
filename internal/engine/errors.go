package engine

import "errors"

// Sentinel errors for the business-rule taxonomy. Handlers map these onto
// HTTP statuses; anything not wrapping one of them is an unexpected
// failure.
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
