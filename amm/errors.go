package amm

import (
	"errors"
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// ErrDomain is matched by every precondition violation of the pricing functions.
var ErrDomain = errors.New("amm domain error")

type InvalidWeightError struct {
	Name   string
	Weight osmomath.Dec
}

func (e InvalidWeightError) Error() string {
	return fmt.Sprintf("%s (%s) must be positive", e.Name, e.Weight)
}

func (e InvalidWeightError) Is(target error) bool { return target == ErrDomain }

type NegativeBalanceError struct {
	Name    string
	Balance osmomath.Dec
}

func (e NegativeBalanceError) Error() string {
	return fmt.Sprintf("%s (%s) must not be negative", e.Name, e.Balance)
}

func (e NegativeBalanceError) Is(target error) bool { return target == ErrDomain }

// ZeroBalanceError is returned when a reserve that divides the result is empty.
type ZeroBalanceError struct {
	Name string
}

func (e ZeroBalanceError) Error() string {
	return fmt.Sprintf("%s is zero, pool is not seeded", e.Name)
}

func (e ZeroBalanceError) Is(target error) bool { return target == ErrDomain }

type SwapFeeOutOfRangeError struct {
	SwapFee osmomath.Dec
}

func (e SwapFeeOutOfRangeError) Error() string {
	return fmt.Sprintf("swap fee (%s) must be in [0, 1)", e.SwapFee)
}

func (e SwapFeeOutOfRangeError) Is(target error) bool { return target == ErrDomain }

type NegativeAmountError struct {
	Name   string
	Amount osmomath.Dec
}

func (e NegativeAmountError) Error() string {
	return fmt.Sprintf("%s (%s) must not be negative", e.Name, e.Amount)
}

func (e NegativeAmountError) Is(target error) bool { return target == ErrDomain }

type AmountOutExceedsBalanceError struct {
	AmountOut  osmomath.Dec
	BalanceOut osmomath.Dec
}

func (e AmountOutExceedsBalanceError) Error() string {
	return fmt.Sprintf("amount out (%s) must be strictly less than balance out (%s)", e.AmountOut, e.BalanceOut)
}

func (e AmountOutExceedsBalanceError) Is(target error) bool { return target == ErrDomain }

// AmountInOverflowError is returned when buying amountOut would cost more than
// any representable amount.
type AmountInOverflowError struct {
	AmountOut osmomath.Dec
}

func (e AmountInOverflowError) Error() string {
	return fmt.Sprintf("amount in for amount out (%s) is too large to represent", e.AmountOut)
}

func (e AmountInOverflowError) Is(target error) bool { return target == ErrDomain }
