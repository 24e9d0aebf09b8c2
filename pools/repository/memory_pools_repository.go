package poolsrepo

import (
	"context"
	"slices"
	"sync"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
)

var _ mvc.PoolsRepository = &poolsRepo{}

type poolsRepo struct {
	pools sync.Map
}

// New creates an in-memory pools repository.
func New() mvc.PoolsRepository {
	return &poolsRepo{
		pools: sync.Map{},
	}
}

// StorePool implements mvc.PoolsRepository.
// A stored pool replaces any previous snapshot with the same ID.
func (r *poolsRepo) StorePool(ctx context.Context, pool domain.Pool) error {
	pool.Assets = slices.Clone(pool.Assets)
	r.pools.Store(pool.ID, pool)
	return nil
}

// GetPool implements mvc.PoolsRepository.
func (r *poolsRepo) GetPool(ctx context.Context, poolID uint64) (domain.Pool, error) {
	poolAny, ok := r.pools.Load(poolID)
	if !ok {
		return domain.Pool{}, domain.PoolNotFoundError{PoolID: poolID}
	}

	pool, ok := poolAny.(domain.Pool)
	if !ok {
		return domain.Pool{}, domain.PoolNotFoundError{PoolID: poolID}
	}

	pool.Assets = slices.Clone(pool.Assets)
	return pool, nil
}

// GetAllPools implements mvc.PoolsRepository.
// Pools are returned in increasing ID order.
func (r *poolsRepo) GetAllPools(ctx context.Context) ([]domain.Pool, error) {
	pools := []domain.Pool{}

	r.pools.Range(func(key, value interface{}) bool {
		pool, ok := value.(domain.Pool)
		if !ok {
			return false
		}

		pool.Assets = slices.Clone(pool.Assets)
		pools = append(pools, pool)

		return true
	})

	slices.SortFunc(pools, func(a, b domain.Pool) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return pools, nil
}
