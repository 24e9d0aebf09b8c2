package domain

import "github.com/osmosis-labs/osmosis/osmomath"

// OutcomeLiquidity is the initial reserve and weight of one outcome asset.
type OutcomeLiquidity struct {
	Index  int          `json:"index"`
	Price  osmomath.Dec `json:"price"`
	Amount osmomath.Dec `json:"amount"`
	Weight osmomath.Dec `json:"weight"`
}

// LiquidityDistribution describes how a base amount seeds a new market pool.
type LiquidityDistribution struct {
	BaseAmount osmomath.Dec       `json:"base_amount"`
	BaseWeight osmomath.Dec       `json:"base_weight"`
	Outcomes   []OutcomeLiquidity `json:"outcomes"`
}
