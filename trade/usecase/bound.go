package usecase

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

// SwapBound builds the slippage-protected swap handed to the transaction
// builder from the current amounts.
//
// Buy is built as an exact-in swap: the user pays AmountIn and accepts no less
// than MinAmountOut = AmountOut * (1 - slippage / 100).
// Sell is built as an exact-out swap: the user receives AmountOut and pays no
// more than MaxAmountIn = AmountIn * (1 + slippage / 100).
//
// Amounts received are rounded down and amounts paid are rounded up to the
// configured asset precision.
func (s *Session) SwapBound(slippagePercent osmomath.Dec) (domain.SwapBound, error) {
	if slippagePercent.IsNil() || slippagePercent.IsNegative() || slippagePercent.GTE(oneHundred) {
		slippage := "nil"
		if !slippagePercent.IsNil() {
			slippage = slippagePercent.String()
		}
		return domain.SwapBound{}, domain.InvalidSlippageError{Slippage: slippage}
	}

	if !s.Snapshot().CanSubmit {
		return domain.SwapBound{}, domain.EmptyTradeError{}
	}

	precision := s.params.AssetPrecision
	slippage := slippagePercent.Quo(oneHundred)

	bound := domain.SwapBound{
		PoolID:          s.pool.PoolID,
		Direction:       s.direction,
		AssetIn:         s.pool.AssetIn(s.direction),
		AssetOut:        s.pool.AssetOut(s.direction),
		AmountIn:        RoundUp(s.amounts.InputAmount, precision),
		AmountOut:       RoundDown(s.amounts.OutputAmount, precision),
		SlippagePercent: slippagePercent,
		MinAmountOut:    zero,
		MaxAmountIn:     zero,
	}

	switch s.direction {
	case domain.Sell:
		bound.MaxAmountIn = RoundUp(s.amounts.InputAmount.MulRoundUp(one.Add(slippage)), precision)
	default:
		bound.MinAmountOut = RoundDown(s.amounts.OutputAmount.MulTruncate(one.Sub(slippage)), precision)
	}

	return bound, nil
}

// RoundDown truncates amount to the given number of decimals.
func RoundDown(amount osmomath.Dec, precision int64) osmomath.Dec {
	scale := decimalScale(precision)
	return amount.Mul(scale).TruncateDec().Quo(scale)
}

// RoundUp rounds amount up to the given number of decimals.
func RoundUp(amount osmomath.Dec, precision int64) osmomath.Dec {
	scale := decimalScale(precision)
	return amount.Mul(scale).Ceil().Quo(scale)
}

func decimalScale(precision int64) osmomath.Dec {
	return osmomath.NewDec(10).Power(uint64(precision))
}
