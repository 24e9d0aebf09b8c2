package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/amm"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/liquidity"
	"github.com/predictmarkets/tqs/log"
)

type poolsUseCase struct {
	poolsRepository mvc.PoolsRepository

	listenersMu sync.RWMutex
	listeners   []domain.PoolUpdateListener

	totalWeight osmomath.Dec

	logger log.Logger
}

var _ mvc.PoolsUsecase = &poolsUseCase{}

// NewPoolsUsecase will create a new pools use case object
func NewPoolsUsecase(liquidityConfig *domain.LiquidityConfig, poolsRepository mvc.PoolsRepository, logger log.Logger) (mvc.PoolsUsecase, error) {
	totalWeight, err := domain.ParseDec("total-weight", liquidityConfig.TotalWeight)
	if err != nil {
		return nil, err
	}

	if !totalWeight.IsPositive() {
		return nil, fmt.Errorf("total-weight must be positive, was %s", liquidityConfig.TotalWeight)
	}

	return &poolsUseCase{
		poolsRepository: poolsRepository,
		listeners:       []domain.PoolUpdateListener{},
		totalWeight:     totalWeight,
		logger:          logger,
	}, nil
}

// IngestPool implements mvc.PoolsUsecase.
// Listener errors are logged and do not fail the ingest.
func (p *poolsUseCase) IngestPool(ctx context.Context, pool domain.Pool) error {
	if err := pool.Validate(); err != nil {
		domain.PoolIngestErrorCounter.WithLabelValues(err.Error()).Inc()
		return err
	}

	if err := p.poolsRepository.StorePool(ctx, pool); err != nil {
		domain.PoolIngestErrorCounter.WithLabelValues(err.Error()).Inc()
		return err
	}

	p.listenersMu.RLock()
	listeners := p.listeners
	p.listenersMu.RUnlock()

	for _, listener := range listeners {
		if err := listener.OnPoolUpdate(ctx, pool); err != nil {
			p.logger.Error("pool update listener failed", zap.Uint64("pool_id", pool.ID), zap.Error(err))
		}
	}

	return nil
}

// RegisterPoolUpdateListener implements mvc.PoolsUsecase.
func (p *poolsUseCase) RegisterPoolUpdateListener(listener domain.PoolUpdateListener) {
	p.listenersMu.Lock()
	defer p.listenersMu.Unlock()

	// Copy on write so that IngestPool can iterate without holding the lock.
	listeners := make([]domain.PoolUpdateListener, 0, len(p.listeners)+1)
	listeners = append(listeners, p.listeners...)
	p.listeners = append(listeners, listener)
}

// GetAllPools implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetAllPools(ctx context.Context) ([]domain.Pool, error) {
	return p.poolsRepository.GetAllPools(ctx)
}

// GetPool implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetPool(ctx context.Context, poolID uint64) (domain.Pool, error) {
	return p.poolsRepository.GetPool(ctx, poolID)
}

// GetPoolState implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetPoolState(ctx context.Context, poolID uint64, outcomeAsset string) (domain.PoolState, error) {
	pool, err := p.poolsRepository.GetPool(ctx, poolID)
	if err != nil {
		return domain.PoolState{}, err
	}

	return pool.PairState(outcomeAsset)
}

// GetSpotPrices implements mvc.PoolsUsecase.
// Outcomes with an empty reserve are priced at zero.
func (p *poolsUseCase) GetSpotPrices(ctx context.Context, poolID uint64) (map[string]osmomath.Dec, error) {
	pool, err := p.poolsRepository.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	outcomes := pool.OutcomeAssets()
	spotPrices := make(map[string]osmomath.Dec, len(outcomes))
	for _, outcome := range outcomes {
		state, err := pool.PairState(outcome)
		if err != nil {
			return nil, err
		}

		if !state.IsActive() {
			spotPrices[outcome] = osmomath.ZeroDec()
			continue
		}

		spotPrice, err := amm.SpotPrice(state, domain.Buy)
		if err != nil {
			return nil, err
		}

		spotPrices[outcome] = spotPrice
	}

	return spotPrices, nil
}

// GetLiquidityDistribution implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetLiquidityDistribution(ctx context.Context, baseAmount osmomath.Dec, numOutcomes int, prices []osmomath.Dec) (domain.LiquidityDistribution, error) {
	if len(prices) == 0 {
		var err error
		prices, err = liquidity.EvenPrices(numOutcomes)
		if err != nil {
			return domain.LiquidityDistribution{}, err
		}
	} else if numOutcomes != 0 && numOutcomes != len(prices) {
		return domain.LiquidityDistribution{}, domain.InvalidLiquidityDistributionError{
			Reason: fmt.Sprintf("got %d prices for %d outcomes", len(prices), numOutcomes),
		}
	}

	return liquidity.Distribute(baseAmount, prices, p.totalWeight)
}
