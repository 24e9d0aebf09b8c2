package amm

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

// ValidatePoolState returns a domain error if the pool state violates any
// precondition of the pricing functions.
func ValidatePoolState(pool domain.PoolState) error {
	return validatePoolParams(pool.BaseBalance, pool.BaseWeight, pool.AssetBalance, pool.AssetWeight, pool.SwapFee)
}

// SpotPrice returns the spot price of the asset received in the given
// direction, quoted in the asset spent.
func SpotPrice(pool domain.PoolState, direction domain.TradeDirection) (osmomath.Dec, error) {
	balanceIn, weightIn, balanceOut, weightOut := pool.Sides(direction)
	return CalcSpotPrice(balanceIn, weightIn, balanceOut, weightOut, pool.SwapFee)
}

// OutGivenIn prices an exact-in trade against the pool in the given direction.
func OutGivenIn(pool domain.PoolState, direction domain.TradeDirection, amountIn osmomath.Dec) (osmomath.Dec, error) {
	balanceIn, weightIn, balanceOut, weightOut := pool.Sides(direction)
	return CalcOutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn, pool.SwapFee)
}

// InGivenOut prices an exact-out trade against the pool in the given direction.
func InGivenOut(pool domain.PoolState, direction domain.TradeDirection, amountOut osmomath.Dec) (osmomath.Dec, error) {
	balanceIn, weightIn, balanceOut, weightOut := pool.Sides(direction)
	return CalcInGivenOut(balanceIn, weightIn, balanceOut, weightOut, amountOut, pool.SwapFee)
}

// SpotPriceAfter returns the spot price the pool would quote once the trade
// of amountIn for amountOut has been executed.
func SpotPriceAfter(pool domain.PoolState, direction domain.TradeDirection, amountIn, amountOut osmomath.Dec) (osmomath.Dec, error) {
	balanceIn, weightIn, balanceOut, weightOut := pool.Sides(direction)
	if amountOut.GTE(balanceOut) {
		return osmomath.Dec{}, AmountOutExceedsBalanceError{AmountOut: amountOut, BalanceOut: balanceOut}
	}
	return CalcSpotPrice(balanceIn.Add(amountIn), weightIn, balanceOut.Sub(amountOut), weightOut, pool.SwapFee)
}

// PriceImpact returns how much worse the effective price amountIn / amountOut
// is than the spot price, as a fraction. Zero for an empty trade.
func PriceImpact(spotPrice, amountIn, amountOut osmomath.Dec) osmomath.Dec {
	if amountIn.IsZero() || amountOut.IsZero() || !spotPrice.IsPositive() {
		return osmomath.ZeroDec()
	}

	effectivePrice := amountIn.Quo(amountOut)
	return effectivePrice.Quo(spotPrice).Sub(one)
}
