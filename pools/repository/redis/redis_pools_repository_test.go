package redis_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	redisrepo "github.com/predictmarkets/tqs/pools/repository/redis"
)

func newPool(id uint64, baseBalance int64) domain.Pool {
	return domain.Pool{
		ID:        id,
		BaseAsset: "usdc",
		SwapFee:   osmomath.MustNewDecFromStr("0.02"),
		Assets: []domain.PoolAsset{
			{Asset: "usdc", Balance: osmomath.NewDec(baseBalance), Weight: osmomath.NewDec(50)},
			{Asset: "yes", Balance: osmomath.NewDec(1000), Weight: osmomath.NewDec(25)},
			{Asset: "no", Balance: osmomath.NewDec(1000), Weight: osmomath.NewDec(25)},
		},
	}
}

var _ = Describe("PoolsRepository", func() {
	var (
		ctx      context.Context
		poolRepo mvc.PoolsRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(redisClient.FlushDB(ctx).Err()).To(Succeed())

		var err error
		poolRepo, err = redisrepo.New(redisClient)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a nil client", func() {
		_, err := redisrepo.New(nil)
		Expect(err).To(HaveOccurred())
	})

	It("returns a not found error for unknown pools", func() {
		_, err := poolRepo.GetPool(ctx, 42)
		Expect(err).To(MatchError(domain.PoolNotFoundError{PoolID: 42}))
	})

	It("stores and reads back a pool snapshot", func() {
		Expect(poolRepo.StorePool(ctx, newPool(1, 1000))).To(Succeed())

		pool, err := poolRepo.GetPool(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.ID).To(Equal(uint64(1)))
		Expect(pool.BaseAsset).To(Equal("usdc"))
		Expect(pool.SwapFee.String()).To(Equal("0.020000000000000000"))
		Expect(pool.Assets).To(HaveLen(3))
		Expect(pool.Assets[0].Balance.String()).To(Equal("1000.000000000000000000"))
	})

	It("replaces a previous snapshot of the same pool", func() {
		Expect(poolRepo.StorePool(ctx, newPool(1, 1000))).To(Succeed())
		Expect(poolRepo.StorePool(ctx, newPool(1, 2500))).To(Succeed())

		pool, err := poolRepo.GetPool(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.Assets[0].Balance.String()).To(Equal("2500.000000000000000000"))
	})

	It("returns all pools ordered by ID", func() {
		for _, id := range []uint64{12, 3, 7} {
			Expect(poolRepo.StorePool(ctx, newPool(id, 1000))).To(Succeed())
		}

		pools, err := poolRepo.GetAllPools(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(pools).To(HaveLen(3))
		Expect([]uint64{pools[0].ID, pools[1].ID, pools[2].ID}).To(Equal([]uint64{3, 7, 12}))
	})
})
