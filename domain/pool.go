package domain

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/osmosis-labs/osmosis/osmoutils"
)

// PoolAsset is a single reserve of a weighted pool as reported by the chain.
// Weight is the raw on-chain weight, not normalized.
type PoolAsset struct {
	Asset   string       `json:"asset"`
	Balance osmomath.Dec `json:"balance"`
	Weight  osmomath.Dec `json:"weight"`
}

// Pool is a snapshot of a multi-asset weighted pool. Exactly one asset is the
// base asset every outcome asset is traded against.
type Pool struct {
	ID        uint64       `json:"id"`
	BaseAsset string       `json:"base_asset"`
	SwapFee   osmomath.Dec `json:"swap_fee"`
	Assets    []PoolAsset  `json:"assets"`
}

// Validate returns an error if the pool snapshot cannot be priced against.
func (p Pool) Validate() error {
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(osmomath.OneDec()) {
		return InvalidPoolError{PoolID: p.ID, Reason: "swap fee must be in [0, 1)"}
	}

	if len(p.Assets) < 2 {
		return InvalidPoolError{PoolID: p.ID, Reason: "pool must have at least two assets"}
	}

	seen := make(map[string]struct{}, len(p.Assets))
	hasBase := false
	for _, asset := range p.Assets {
		if asset.Asset == "" {
			return InvalidPoolError{PoolID: p.ID, Reason: "empty asset id"}
		}
		if _, ok := seen[asset.Asset]; ok {
			return InvalidPoolError{PoolID: p.ID, Reason: "duplicate asset " + asset.Asset}
		}
		seen[asset.Asset] = struct{}{}

		if asset.Balance.IsNil() || asset.Balance.IsNegative() {
			return InvalidPoolError{PoolID: p.ID, Reason: "negative balance for " + asset.Asset}
		}
		if asset.Weight.IsNil() || !asset.Weight.IsPositive() {
			return InvalidPoolError{PoolID: p.ID, Reason: "non-positive weight for " + asset.Asset}
		}

		if asset.Asset == p.BaseAsset {
			hasBase = true
		}
	}

	if !hasBase {
		return InvalidPoolError{PoolID: p.ID, Reason: "base asset " + p.BaseAsset + " is not in the pool"}
	}

	return nil
}

// OutcomeAssets returns the ids of all non-base assets in pool order.
func (p Pool) OutcomeAssets() []string {
	outcomes := make([]string, 0, len(p.Assets))
	for _, asset := range p.Assets {
		if asset.Asset != p.BaseAsset {
			outcomes = append(outcomes, asset.Asset)
		}
	}
	return outcomes
}

// HasOutcomeAsset returns true if asset is one of the pool's outcome assets.
func (p Pool) HasOutcomeAsset(asset string) bool {
	return osmoutils.Contains(p.OutcomeAssets(), asset)
}

// TotalWeight returns the sum of raw weights of all pool assets.
func (p Pool) TotalWeight() osmomath.Dec {
	total := osmomath.ZeroDec()
	for _, asset := range p.Assets {
		total = total.Add(asset.Weight)
	}
	return total
}

func (p Pool) findAsset(asset string) (PoolAsset, bool) {
	for _, a := range p.Assets {
		if a.Asset == asset {
			return a, true
		}
	}
	return PoolAsset{}, false
}

// PairState extracts the base/outcome pair from the pool with weights
// normalized by the total pool weight.
func (p Pool) PairState(outcomeAsset string) (PoolState, error) {
	if err := p.Validate(); err != nil {
		return PoolState{}, err
	}

	if outcomeAsset == p.BaseAsset {
		return PoolState{}, ValidateInputDenoms(outcomeAsset, p.BaseAsset)
	}

	if !p.HasOutcomeAsset(outcomeAsset) {
		return PoolState{}, OutcomeAssetNotInPoolError{PoolID: p.ID, Asset: outcomeAsset}
	}
	outcome, _ := p.findAsset(outcomeAsset)
	base, _ := p.findAsset(p.BaseAsset)

	totalWeight := p.TotalWeight()

	return PoolState{
		PoolID:       p.ID,
		BaseAsset:    p.BaseAsset,
		OutcomeAsset: outcomeAsset,
		BaseBalance:  base.Balance,
		BaseWeight:   base.Weight.Quo(totalWeight),
		AssetBalance: outcome.Balance,
		AssetWeight:  outcome.Weight.Quo(totalWeight),
		SwapFee:      p.SwapFee,
	}, nil
}

// PoolState is an immutable snapshot of the two sides of a pool a trade
// session prices against.
type PoolState struct {
	PoolID       uint64       `json:"pool_id"`
	BaseAsset    string       `json:"base_asset"`
	OutcomeAsset string       `json:"outcome_asset"`
	BaseBalance  osmomath.Dec `json:"base_balance"`
	BaseWeight   osmomath.Dec `json:"base_weight"`
	AssetBalance osmomath.Dec `json:"asset_balance"`
	AssetWeight  osmomath.Dec `json:"asset_weight"`
	SwapFee      osmomath.Dec `json:"swap_fee"`
}

// IsActive returns true if both reserves are seeded.
func (s PoolState) IsActive() bool {
	return s.BaseBalance.IsPositive() && s.AssetBalance.IsPositive()
}

// Sides returns balance and weight of the in and out assets for the given direction.
// Buy spends the base asset for the outcome asset, Sell the reverse.
func (s PoolState) Sides(direction TradeDirection) (balanceIn, weightIn, balanceOut, weightOut osmomath.Dec) {
	if direction == Sell {
		return s.AssetBalance, s.AssetWeight, s.BaseBalance, s.BaseWeight
	}
	return s.BaseBalance, s.BaseWeight, s.AssetBalance, s.AssetWeight
}

// AssetIn returns the asset spent in the given direction.
func (s PoolState) AssetIn(direction TradeDirection) string {
	if direction == Sell {
		return s.OutcomeAsset
	}
	return s.BaseAsset
}

// AssetOut returns the asset received in the given direction.
func (s PoolState) AssetOut(direction TradeDirection) string {
	if direction == Sell {
		return s.BaseAsset
	}
	return s.OutcomeAsset
}

// PoolUpdateListener is notified every time a fresh pool snapshot is ingested.
type PoolUpdateListener interface {
	OnPoolUpdate(ctx context.Context, pool Pool) error
}
