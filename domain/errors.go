package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

// GetStatusCode returns the HTTP status code for the given error.
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		poolNotFound      PoolNotFoundError
		sessionNotFound   SessionNotFoundError
		outcomeNotInPool  OutcomeAssetNotInPoolError
		invalidPool       InvalidPoolError
		invalidField      InvalidTradeFieldError
		invalidDirection  InvalidTradeDirectionError
		invalidSlippage   InvalidSlippageError
		invalidAmount     InvalidAmountError
		sameDenom         SameDenomError
		invalidLiquidity  InvalidLiquidityDistributionError
		inactivePoolState InactivePoolError
		emptyTrade        EmptyTradeError
		invalidPricing    InvalidPricingInputError
	)

	switch {
	case errors.Is(err, ErrNotFound),
		errors.As(err, &poolNotFound),
		errors.As(err, &sessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrBadParamInput),
		errors.As(err, &outcomeNotInPool),
		errors.As(err, &invalidPool),
		errors.As(err, &invalidField),
		errors.As(err, &invalidDirection),
		errors.As(err, &invalidSlippage),
		errors.As(err, &invalidAmount),
		errors.As(err, &sameDenom),
		errors.As(err, &invalidLiquidity),
		errors.As(err, &inactivePoolState),
		errors.As(err, &emptyTrade),
		errors.As(err, &invalidPricing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type PoolNotFoundError struct {
	PoolID uint64
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool with ID (%d) is not found", e.PoolID)
}

type InvalidPoolError struct {
	PoolID uint64
	Reason string
}

func (e InvalidPoolError) Error() string {
	return fmt.Sprintf("pool (%d) is invalid: %s", e.PoolID, e.Reason)
}

// InactivePoolError is returned when a session is started against a pool
// whose reserves are not seeded yet.
type InactivePoolError struct {
	PoolID uint64
}

func (e InactivePoolError) Error() string {
	return fmt.Sprintf("pool (%d) has an empty reserve", e.PoolID)
}

type OutcomeAssetNotInPoolError struct {
	PoolID uint64
	Asset  string
}

func (e OutcomeAssetNotInPoolError) Error() string {
	return fmt.Sprintf("asset (%s) is not in pool (%d)", e.Asset, e.PoolID)
}

type SessionNotFoundError struct {
	SessionID string
}

func (e SessionNotFoundError) Error() string {
	return fmt.Sprintf("trade session (%s) is not found", e.SessionID)
}

type InvalidTradeFieldError struct {
	Field string
}

func (e InvalidTradeFieldError) Error() string {
	return fmt.Sprintf("trade field (%s) is invalid, must be one of input, output, percent", e.Field)
}

type InvalidTradeDirectionError struct {
	Direction string
}

func (e InvalidTradeDirectionError) Error() string {
	return fmt.Sprintf("trade direction (%s) is invalid, must be buy or sell", e.Direction)
}

type InvalidSlippageError struct {
	Slippage string
}

func (e InvalidSlippageError) Error() string {
	return fmt.Sprintf("slippage (%s) is invalid, must be in [0, 100)", e.Slippage)
}

type InvalidAmountError struct {
	Name   string
	Amount string
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("%s (%s) is invalid, must be a non-negative decimal", e.Name, e.Amount)
}

type InvalidLiquidityDistributionError struct {
	Reason string
}

func (e InvalidLiquidityDistributionError) Error() string {
	return fmt.Sprintf("invalid liquidity distribution: %s", e.Reason)
}

type SameDenomError struct {
	DenomA string
	DenomB string
}

func (e SameDenomError) Error() string {
	return fmt.Sprintf("two input assets are equal (%s), must not be the same", e.DenomA)
}

// EmptyTradeError is returned when a swap bound is requested for a session
// with nothing to trade.
type EmptyTradeError struct {
	SessionID string
}

func (e EmptyTradeError) Error() string {
	return fmt.Sprintf("trade session (%s) has no amount to submit", e.SessionID)
}
