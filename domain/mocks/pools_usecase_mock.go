package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
)

var _ mvc.PoolsUsecase = &PoolsUsecaseMock{}

type PoolsUsecaseMock struct {
	IngestPoolFunc                 func(ctx context.Context, pool domain.Pool) error
	RegisterPoolUpdateListenerFunc func(listener domain.PoolUpdateListener)
	GetAllPoolsFunc                func(ctx context.Context) ([]domain.Pool, error)
	GetPoolFunc                    func(ctx context.Context, poolID uint64) (domain.Pool, error)
	GetPoolStateFunc               func(ctx context.Context, poolID uint64, outcomeAsset string) (domain.PoolState, error)
	GetSpotPricesFunc              func(ctx context.Context, poolID uint64) (map[string]osmomath.Dec, error)
	GetLiquidityDistributionFunc   func(ctx context.Context, baseAmount osmomath.Dec, numOutcomes int, prices []osmomath.Dec) (domain.LiquidityDistribution, error)

	// Pools is used by the default implementations of the getters when the
	// corresponding function is not set.
	Pools []domain.Pool
}

// IngestPool implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) IngestPool(ctx context.Context, pool domain.Pool) error {
	if pm.IngestPoolFunc != nil {
		return pm.IngestPoolFunc(ctx, pool)
	}
	panic("unimplemented")
}

// RegisterPoolUpdateListener implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) RegisterPoolUpdateListener(listener domain.PoolUpdateListener) {
	if pm.RegisterPoolUpdateListenerFunc != nil {
		pm.RegisterPoolUpdateListenerFunc(listener)
		return
	}
	panic("unimplemented")
}

// GetAllPools implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) GetAllPools(ctx context.Context) ([]domain.Pool, error) {
	if pm.GetAllPoolsFunc != nil {
		return pm.GetAllPoolsFunc(ctx)
	}
	return pm.Pools, nil
}

// GetPool implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) GetPool(ctx context.Context, poolID uint64) (domain.Pool, error) {
	if pm.GetPoolFunc != nil {
		return pm.GetPoolFunc(ctx, poolID)
	}

	for _, pool := range pm.Pools {
		if pool.ID == poolID {
			return pool, nil
		}
	}
	return domain.Pool{}, domain.PoolNotFoundError{PoolID: poolID}
}

// GetPoolState implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) GetPoolState(ctx context.Context, poolID uint64, outcomeAsset string) (domain.PoolState, error) {
	if pm.GetPoolStateFunc != nil {
		return pm.GetPoolStateFunc(ctx, poolID, outcomeAsset)
	}

	pool, err := pm.GetPool(ctx, poolID)
	if err != nil {
		return domain.PoolState{}, err
	}
	return pool.PairState(outcomeAsset)
}

// GetSpotPrices implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) GetSpotPrices(ctx context.Context, poolID uint64) (map[string]osmomath.Dec, error) {
	if pm.GetSpotPricesFunc != nil {
		return pm.GetSpotPricesFunc(ctx, poolID)
	}
	panic("unimplemented")
}

// GetLiquidityDistribution implements mvc.PoolsUsecase.
func (pm *PoolsUsecaseMock) GetLiquidityDistribution(ctx context.Context, baseAmount osmomath.Dec, numOutcomes int, prices []osmomath.Dec) (domain.LiquidityDistribution, error) {
	if pm.GetLiquidityDistributionFunc != nil {
		return pm.GetLiquidityDistributionFunc(ctx, baseAmount, numOutcomes, prices)
	}
	panic("unimplemented")
}
