package domain

import "errors"

var (
	// ErrInsufficientFunds means a conditional debit found less money than
	// it needed. The wallet itself exists.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBalanceNotFound means the user has no wallet row at all.
	ErrBalanceNotFound = errors.New("balance not found")
)
