package types

import "errors"

var (
	ErrPoolIDNotValid       = errors.New("poolID is not valid")
	ErrSessionIDRequired    = errors.New("session id is required")
	ErrOutcomeRequired      = errors.New("outcome is required")
	ErrBalanceNotValid      = errors.New("balance is not valid, must be a non-negative decimal optionally followed by a denom")
	ErrBalanceDenomNotSpent = errors.New("balance denom must be the asset spent in the trade direction")
)
