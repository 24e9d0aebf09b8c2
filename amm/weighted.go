// Package amm implements the constant-weighted-product market maker formulas
// used to price trades against weighted pools.
//
// All functions are pure and operate on fixed-point decimals. Results are not
// rounded to asset precision; rounding happens at the transaction boundary.
// Where an intermediate value must be rounded, it is rounded in the direction
// that gives the trader less out or makes them pay more in.
package amm

import (
	sdkmath "cosmossdk.io/math"
	"github.com/osmosis-labs/osmosis/osmomath"
)

var (
	one    = osmomath.OneDec()
	oneBig = osmomath.OneBigDec()

	maxIntegerPower = osmomath.NewDec(128)
	maxPowExponent  = osmomath.NewBigDec(128)

	// Largest amount in that converts back to a Dec with room to spare.
	maxAmount = osmomath.NewBigDec(10).PowerInteger(60)
)

// CalcSpotPrice returns the instantaneous price of the out asset in units of
// the in asset, fee included:
//
//	(balanceIn / weightIn) / (balanceOut / weightOut) / (1 - swapFee)
func CalcSpotPrice(balanceIn, weightIn, balanceOut, weightOut, swapFee osmomath.Dec) (osmomath.Dec, error) {
	if err := validatePoolParams(balanceIn, weightIn, balanceOut, weightOut, swapFee); err != nil {
		return osmomath.Dec{}, err
	}

	if balanceOut.IsZero() {
		return osmomath.Dec{}, ZeroBalanceError{Name: "balance out"}
	}

	// (balanceIn * weightOut) / (balanceOut * weightIn) has one rounding step
	// less than dividing each balance by its weight first.
	numerator := balanceIn.Mul(weightOut)
	denominator := balanceOut.Mul(weightIn)

	return numerator.Quo(denominator).Quo(one.Sub(swapFee)), nil
}

// CalcOutGivenIn returns the amount of the out asset received for spending
// exactly amountIn of the in asset:
//
//	balanceOut * (1 - (balanceIn / (balanceIn + amountIn * (1 - swapFee))) ^ (weightIn / weightOut))
//
// The result is strictly less than balanceOut for any finite amountIn.
func CalcOutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn, swapFee osmomath.Dec) (osmomath.Dec, error) {
	if err := validatePoolParams(balanceIn, weightIn, balanceOut, weightOut, swapFee); err != nil {
		return osmomath.Dec{}, err
	}

	if err := validateAmount("amount in", amountIn); err != nil {
		return osmomath.Dec{}, err
	}

	if amountIn.IsZero() || balanceOut.IsZero() {
		return osmomath.ZeroDec(), nil
	}

	if balanceIn.IsZero() {
		return osmomath.Dec{}, ZeroBalanceError{Name: "balance in"}
	}

	weightRatio := weightIn.Quo(weightOut)
	adjustedIn := osmomath.BigDecFromDec(amountIn).MulTruncate(osmomath.BigDecFromDec(one.Sub(swapFee)))

	// Rounding y up rounds the amount out down.
	balanceInBig := osmomath.BigDecFromDec(balanceIn)
	y := balanceInBig.QuoRoundUp(balanceInBig.Add(adjustedIn))

	paranthetical := oneBig.Sub(pow(y, weightRatio))
	if !paranthetical.IsPositive() {
		return osmomath.ZeroDec(), nil
	}

	amountOut := osmomath.BigDecFromDec(balanceOut).MulTruncate(paranthetical).Dec()

	// The reserve is never fully drained.
	if amountOut.GTE(balanceOut) {
		amountOut = balanceOut.Sub(sdkmath.LegacySmallestDec())
	}

	return amountOut, nil
}

// CalcInGivenOut returns the amount of the in asset that must be spent to
// receive exactly amountOut of the out asset:
//
//	balanceIn * ((balanceOut / (balanceOut - amountOut)) ^ (weightOut / weightIn) - 1) / (1 - swapFee)
//
// amountOut must be strictly less than balanceOut.
func CalcInGivenOut(balanceIn, weightIn, balanceOut, weightOut, amountOut, swapFee osmomath.Dec) (osmomath.Dec, error) {
	if err := validatePoolParams(balanceIn, weightIn, balanceOut, weightOut, swapFee); err != nil {
		return osmomath.Dec{}, err
	}

	if err := validateAmount("amount out", amountOut); err != nil {
		return osmomath.Dec{}, err
	}

	if amountOut.IsZero() {
		return osmomath.ZeroDec(), nil
	}

	if amountOut.GTE(balanceOut) {
		return osmomath.Dec{}, AmountOutExceedsBalanceError{AmountOut: amountOut, BalanceOut: balanceOut}
	}

	if balanceIn.IsZero() {
		return osmomath.Dec{}, ZeroBalanceError{Name: "balance in"}
	}

	weightRatio := weightOut.Quo(weightIn)

	// balanceOut / (balanceOut - amountOut) is >= 1 and unbounded, so the power
	// is taken of its reciprocal which stays in (0, 1].
	// Truncating the reciprocal rounds the amount in up.
	balanceOutBig := osmomath.BigDecFromDec(balanceOut)
	remaining := balanceOutBig.Sub(osmomath.BigDecFromDec(amountOut)).QuoTruncate(balanceOutBig)

	remainingPow := pow(remaining, weightRatio)
	if remainingPow.IsZero() {
		return osmomath.Dec{}, AmountInOverflowError{AmountOut: amountOut}
	}

	paranthetical := oneBig.QuoRoundUp(remainingPow).Sub(oneBig)
	if !paranthetical.IsPositive() {
		return osmomath.ZeroDec(), nil
	}

	amountIn := osmomath.BigDecFromDec(balanceIn).MulRoundUp(paranthetical).QuoRoundUp(osmomath.BigDecFromDec(one.Sub(swapFee)))
	if amountIn.GT(maxAmount) {
		return osmomath.Dec{}, AmountInOverflowError{AmountOut: amountOut}
	}

	return amountIn.DecRoundUp(), nil
}

// pow computes base^exp for base in [0, 1] as 2^-(exp * log2(1 / base)).
// Small integer exponents are multiplied out. Results below 2^-128 are zero.
func pow(base osmomath.BigDec, exp osmomath.Dec) osmomath.BigDec {
	if exp.IsZero() || base.Equal(oneBig) {
		return oneBig
	}

	if base.IsZero() {
		return osmomath.ZeroBigDec()
	}

	if exp.IsInteger() && exp.LTE(maxIntegerPower) {
		return base.PowerInteger(exp.TruncateInt().Uint64())
	}

	exponent := base.LogBase2().Neg().Mul(osmomath.BigDecFromDec(exp))
	if exponent.GT(maxPowExponent) {
		return osmomath.ZeroBigDec()
	}

	return oneBig.Quo(osmomath.Exp2(exponent))
}

func validatePoolParams(balanceIn, weightIn, balanceOut, weightOut, swapFee osmomath.Dec) error {
	if weightIn.IsNil() || !weightIn.IsPositive() {
		return InvalidWeightError{Name: "weight in", Weight: weightIn}
	}

	if weightOut.IsNil() || !weightOut.IsPositive() {
		return InvalidWeightError{Name: "weight out", Weight: weightOut}
	}

	if balanceIn.IsNil() || balanceIn.IsNegative() {
		return NegativeBalanceError{Name: "balance in", Balance: balanceIn}
	}

	if balanceOut.IsNil() || balanceOut.IsNegative() {
		return NegativeBalanceError{Name: "balance out", Balance: balanceOut}
	}

	if swapFee.IsNil() || swapFee.IsNegative() || swapFee.GTE(one) {
		return SwapFeeOutOfRangeError{SwapFee: swapFee}
	}

	return nil
}

func validateAmount(name string, amount osmomath.Dec) error {
	if amount.IsNil() || amount.IsNegative() {
		return NegativeAmountError{Name: name, Amount: amount}
	}
	return nil
}
