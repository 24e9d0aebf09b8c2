package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
)

const (
	keySeparator = "~"

	poolsPrefix = "p" + keySeparator
	// poolsKey is the hash holding every pool snapshot keyed by pool ID.
	poolsKey = poolsPrefix + "pools"
)

var (
	_ mvc.PoolsRepository = &redisPoolsRepo{}

	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

type redisPoolsRepo struct {
	client redis.Cmdable
}

// New creates a pools repository storing JSON encoded snapshots in Redis.
func New(client redis.Cmdable) (mvc.PoolsRepository, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	return &redisPoolsRepo{client: client}, nil
}

// StorePool implements mvc.PoolsRepository.
func (r *redisPoolsRepo) StorePool(ctx context.Context, pool domain.Pool) error {
	poolBytes, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshal pool (%d): %w", pool.ID, err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, poolsKey, poolField(pool.ID), poolBytes)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store pool (%d): %w", pool.ID, err)
	}

	return nil
}

// GetPool implements mvc.PoolsRepository.
func (r *redisPoolsRepo) GetPool(ctx context.Context, poolID uint64) (domain.Pool, error) {
	poolStr, err := r.client.HGet(ctx, poolsKey, poolField(poolID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Pool{}, domain.PoolNotFoundError{PoolID: poolID}
	}
	if err != nil {
		return domain.Pool{}, fmt.Errorf("get pool (%d): %w", poolID, err)
	}

	var pool domain.Pool
	if err := json.Unmarshal([]byte(poolStr), &pool); err != nil {
		return domain.Pool{}, fmt.Errorf("unmarshal pool (%d): %w", poolID, err)
	}

	return pool, nil
}

// GetAllPools implements mvc.PoolsRepository.
// Pools are returned in increasing ID order.
func (r *redisPoolsRepo) GetAllPools(ctx context.Context) ([]domain.Pool, error) {
	resultMap, err := r.client.HGetAll(ctx, poolsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("get all pools: %w", err)
	}

	pools := make([]domain.Pool, 0, len(resultMap))
	for poolIDStr, poolStr := range resultMap {
		var pool domain.Pool
		if err := json.Unmarshal([]byte(poolStr), &pool); err != nil {
			return nil, fmt.Errorf("unmarshal pool (%s): %w", poolIDStr, err)
		}
		pools = append(pools, pool)
	}

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

func poolField(poolID uint64) string {
	return strconv.FormatUint(poolID, 10)
}
