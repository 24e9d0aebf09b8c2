package mvc

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

// PoolsUsecase represent the pool's usecases
type PoolsUsecase interface {
	// IngestPool validates and stores the given pool snapshot and notifies
	// every registered listener.
	IngestPool(ctx context.Context, pool domain.Pool) error

	// RegisterPoolUpdateListener registers a listener notified on every ingested pool.
	RegisterPoolUpdateListener(listener domain.PoolUpdateListener)

	GetAllPools(ctx context.Context) ([]domain.Pool, error)
	// GetPool returns the pool with the given ID.
	GetPool(ctx context.Context, poolID uint64) (domain.Pool, error)

	// GetPoolState returns the base/outcome pair of the given pool with
	// normalized weights.
	GetPoolState(ctx context.Context, poolID uint64, outcomeAsset string) (domain.PoolState, error)

	// GetSpotPrices returns the buy spot price of every outcome asset of the pool
	// in units of the base asset.
	GetSpotPrices(ctx context.Context, poolID uint64) (map[string]osmomath.Dec, error)

	// GetLiquidityDistribution returns the initial reserves and weights for a
	// new market with the given outcome prices. If prices is empty, numOutcomes
	// outcomes are priced evenly.
	GetLiquidityDistribution(ctx context.Context, baseAmount osmomath.Dec, numOutcomes int, prices []osmomath.Dec) (domain.LiquidityDistribution, error)
}

// PoolsRepository stores pool snapshots.
type PoolsRepository interface {
	StorePool(ctx context.Context, pool domain.Pool) error
	GetPool(ctx context.Context, poolID uint64) (domain.Pool, error)
	GetAllPools(ctx context.Context) ([]domain.Pool, error)
}
