package main

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/log"
	"github.com/predictmarkets/tqs/middleware"

	poolshttpdelivery "github.com/predictmarkets/tqs/pools/delivery/http"
	poolsrepo "github.com/predictmarkets/tqs/pools/repository"
	poolsredisrepo "github.com/predictmarkets/tqs/pools/repository/redis"
	poolsusecase "github.com/predictmarkets/tqs/pools/usecase"
	quotehttpdelivery "github.com/predictmarkets/tqs/quote/delivery/http"
	quoteusecase "github.com/predictmarkets/tqs/quote/usecase"
	systemhttpdelivery "github.com/predictmarkets/tqs/system/delivery/http"
	tradehttpdelivery "github.com/predictmarkets/tqs/trade/delivery/http"
	tradeusecase "github.com/predictmarkets/tqs/trade/usecase"
)

// TradeQuoteServer defines an interface for the trade quote server (TQS).
// It encapsulates the pool snapshots received from the chain query
// collaborator and the trade sessions priced against them.
type TradeQuoteServer interface {
	GetPoolsUsecase() mvc.PoolsUsecase
	GetTradeUsecase() mvc.TradeUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type tradeQuoteServer struct {
	poolsUsecase mvc.PoolsUsecase
	tradeUsecase mvc.TradeUsecase
	feedClient   *poolsusecase.PoolFeedClient
	redisClient  *redis.Client
	e            *echo.Echo
	address      string
	logger       log.Logger
}

var _ TradeQuoteServer = &tradeQuoteServer{}

// GetPoolsUsecase implements TradeQuoteServer.
func (s *tradeQuoteServer) GetPoolsUsecase() mvc.PoolsUsecase {
	return s.poolsUsecase
}

// GetTradeUsecase implements TradeQuoteServer.
func (s *tradeQuoteServer) GetTradeUsecase() mvc.TradeUsecase {
	return s.tradeUsecase
}

// GetLogger implements TradeQuoteServer.
func (s *tradeQuoteServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements TradeQuoteServer.
func (s *tradeQuoteServer) Shutdown(ctx context.Context) error {
	if err := s.e.Shutdown(ctx); err != nil {
		return err
	}

	if s.redisClient != nil {
		return s.redisClient.Close()
	}

	return nil
}

// Start implements TradeQuoteServer. The pool feed runs until ctx is cancelled.
func (s *tradeQuoteServer) Start(ctx context.Context) error {
	if s.feedClient != nil {
		go s.feedClient.Run(ctx)
	}

	s.logger.Info("Starting trade quote server", zap.String("address", s.address))
	return s.e.Start(s.address)
}

// NewTradeQuoteServer creates a new trade quote server (TQS).
func NewTradeQuoteServer(ctx context.Context, config domain.Config, logger log.Logger) (TradeQuoteServer, error) {
	// Setup echo server
	e := echo.New()
	e.HideBanner = true
	if config.ServerTimeoutDurationSecs > 0 {
		e.Server.ReadHeaderTimeout = time.Duration(config.ServerTimeoutDurationSecs) * time.Second
	}

	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	if config.OTEL != nil && config.OTEL.DSN != "" {
		e.Use(middleware.TraceWithParamsMiddleware(tracerName))
	}

	var (
		poolsRepository mvc.PoolsRepository
		redisClient     *redis.Client
		err             error
	)

	switch config.StorageBackend {
	case domain.MemoryStorageBackend, "":
		poolsRepository = poolsrepo.New()
	case domain.RedisStorageBackend:
		// Create redis client and ensure that it is up.
		redisAddress := fmt.Sprintf("%s:%s", config.StorageHost, config.StoragePort)
		logger.Info("Pinging redis", zap.String("redis_address", redisAddress))
		redisClient = redis.NewClient(&redis.Options{
			Addr:     redisAddress,
			Password: "", // no password set
			DB:       0,  // use default DB
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, err
		}

		poolsRepository, err = poolsredisrepo.New(redisClient)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}

	poolsUsecase, err := poolsusecase.NewPoolsUsecase(config.Liquidity, poolsRepository, logger)
	if err != nil {
		return nil, err
	}

	tradeUsecase, err := tradeusecase.NewTradeUsecase(config.Trade, poolsUsecase, logger)
	if err != nil {
		return nil, err
	}

	// Open sessions are refreshed on every ingested pool snapshot.
	poolsUsecase.RegisterPoolUpdateListener(tradeUsecase)

	quoteUsecase := quoteusecase.NewQuoteUsecase(poolsUsecase)

	// HTTP handlers
	poolshttpdelivery.NewPoolsHandler(e, poolsUsecase)
	quotehttpdelivery.NewQuoteHandler(e, quoteUsecase)
	tradehttpdelivery.NewTradeHandler(e, tradeUsecase, logger)

	// A nil *redis.Client must not be passed as a non-nil redis.Cmdable.
	var healthRedis redis.Cmdable
	if redisClient != nil {
		healthRedis = redisClient
	}
	systemhttpdelivery.NewSystemHandler(e, config, logger, healthRedis, poolsUsecase)

	var feedClient *poolsusecase.PoolFeedClient
	if config.PoolFeed.IsEnabled() {
		feedClient = poolsusecase.NewPoolFeedClient(config.PoolFeed, poolsUsecase, logger)
	}

	return &tradeQuoteServer{
		poolsUsecase: poolsUsecase,
		tradeUsecase: tradeUsecase,
		feedClient:   feedClient,
		redisClient:  redisClient,
		e:            e,
		address:      config.ServerAddress,
		logger:       logger,
	}, nil
}
