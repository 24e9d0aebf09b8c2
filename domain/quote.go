package domain

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// QuoteRequest selects the pool state a quote is priced against. Either a
// stored pool is referenced by PoolID and OutcomeAsset, or an explicit Pool
// state is given.
type QuoteRequest struct {
	PoolID       uint64
	OutcomeAsset string
	Pool         *PoolState
	Direction    TradeDirection
	Amount       osmomath.Dec
}

// Quote is the result of pricing a trade against a pool state.
type Quote struct {
	PoolID         uint64         `json:"pool_id"`
	Direction      TradeDirection `json:"direction"`
	AssetIn        string         `json:"asset_in,omitempty"`
	AssetOut       string         `json:"asset_out,omitempty"`
	AmountIn       osmomath.Dec   `json:"amount_in"`
	AmountOut      osmomath.Dec   `json:"amount_out"`
	SwapFee        osmomath.Dec   `json:"swap_fee"`
	SpotPrice      osmomath.Dec   `json:"spot_price"`
	SpotPriceAfter osmomath.Dec   `json:"spot_price_after"`
	PriceImpact    osmomath.Dec   `json:"price_impact"`
}

// InvalidPricingInputError wraps a pricing engine precondition violation caused
// by user supplied pool parameters or amounts.
type InvalidPricingInputError struct {
	Err error
}

func (e InvalidPricingInputError) Error() string {
	return fmt.Sprintf("invalid pricing input: %v", e.Err)
}

func (e InvalidPricingInputError) Unwrap() error {
	return e.Err
}
