package redis_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func TestRedis(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Redis Suite")
}

var _ = BeforeSuite(func() {
	redisClient = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		Skip("redis not available: " + err.Error())
	}
})

var _ = AfterSuite(func() {
	if redisClient == nil {
		return
	}
	_ = redisClient.FlushDB(context.Background()).Err()
	Expect(redisClient.Close()).To(Succeed())
})
