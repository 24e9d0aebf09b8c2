package main

import (
	"github.com/predictmarkets/tqs/domain"
)

// DefaultConfig defines the default config for the trade quote server.
var DefaultConfig = domain.Config{
	StorageBackend: domain.MemoryStorageBackend,
	StorageHost:    "localhost",
	StoragePort:    "6379",

	ServerAddress:             ":9093",
	ServerTimeoutDurationSecs: 2,

	LoggerFilename:     "tqs.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, Authorization",
		AllowedMethods: "HEAD, GET, POST, DELETE, OPTIONS",
		AllowedOrigin:  "*",
	},

	OTEL: &domain.OTELConfig{
		Environment: "development",
	},

	Trade: &domain.TradeConfig{
		// A third of the opposite reserve per trade.
		MaxInRatio:             "0.333333333333333333",
		MaxOutRatio:            "0.333333333333333333",
		DefaultSlippagePercent: "1",
		AssetPrecision:         6,
		MaxSessions:            10000,
		RefreshWorkers:         4,
	},

	Liquidity: &domain.LiquidityConfig{
		TotalWeight: "100",
	},

	PoolFeed: &domain.PoolFeedConfig{},
}
