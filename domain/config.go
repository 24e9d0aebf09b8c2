package domain

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/osmosis-labs/osmosis/osmomath"
)

const (
	// MemoryStorageBackend keeps pool snapshots in process memory.
	MemoryStorageBackend = "memory"
	// RedisStorageBackend keeps pool snapshots in Redis.
	RedisStorageBackend = "redis"
)

// Config defines the config for the trade quote server.
type Config struct {
	// Storage defines the storage backend, host and port.
	StorageBackend string `mapstructure:"storage-backend"`
	StorageHost    string `mapstructure:"db-host"`
	StoragePort    string `mapstructure:"db-port"`

	// Defines the web server configuration.
	ServerAddress             string `mapstructure:"server-address"`
	ServerTimeoutDurationSecs int    `mapstructure:"timeout-duration-secs"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`

	// Trade encapsulates the trade session config.
	Trade *TradeConfig `mapstructure:"trade"`

	// Liquidity encapsulates the liquidity distribution config.
	Liquidity *LiquidityConfig `mapstructure:"liquidity"`

	// PoolFeed configures the client receiving pool snapshots.
	PoolFeed *PoolFeedConfig `mapstructure:"pool-feed"`
}

// PoolFeedConfig defines where pool snapshots are streamed from.
// The feed is disabled if both URLs are empty.
type PoolFeedConfig struct {
	WSURL   string `mapstructure:"ws-url"`
	RESTURL string `mapstructure:"rest-url"`
}

// IsEnabled returns true if any feed endpoint is configured.
func (c *PoolFeedConfig) IsEnabled() bool {
	return c != nil && (c.WSURL != "" || c.RESTURL != "")
}

// CORSConfig defines the headers set by the CORS middleware.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}

// OTELConfig configures tracing. Tracing is disabled if DSN is empty.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`

	CustomSampleRate struct {
		Trade float64 `mapstructure:"trade"`
		Other float64 `mapstructure:"other"`
	} `mapstructure:"custom-sample-rate"`
}

// TradeConfig configures trade sessions.
type TradeConfig struct {
	// MaxInRatio caps a single trade's input at this fraction of the in-side reserve.
	MaxInRatio string `mapstructure:"max-in-ratio"`
	// MaxOutRatio caps a single trade's output at this fraction of the out-side reserve.
	MaxOutRatio string `mapstructure:"max-out-ratio"`
	// DefaultSlippagePercent is used when a bound is requested without slippage.
	DefaultSlippagePercent string `mapstructure:"default-slippage-percent"`
	// AssetPrecision is the number of decimals amounts are rounded to at the
	// transaction builder boundary.
	AssetPrecision int64 `mapstructure:"asset-precision"`
	// MaxSessions bounds the number of concurrently open sessions.
	MaxSessions int `mapstructure:"max-sessions"`
	// RefreshWorkers is the number of workers recomputing sessions on pool updates.
	RefreshWorkers int `mapstructure:"refresh-workers"`
}

// TradeParams is the parsed form of TradeConfig.
type TradeParams struct {
	MaxInRatio             osmomath.Dec
	MaxOutRatio            osmomath.Dec
	DefaultSlippagePercent osmomath.Dec
	AssetPrecision         int64
}

// Params parses the decimal fields of the trade config.
func (c TradeConfig) Params() (TradeParams, error) {
	maxInRatio, err := parseRatio("max-in-ratio", c.MaxInRatio)
	if err != nil {
		return TradeParams{}, err
	}

	maxOutRatio, err := parseRatio("max-out-ratio", c.MaxOutRatio)
	if err != nil {
		return TradeParams{}, err
	}

	slippage, err := ParseSlippagePercent(c.DefaultSlippagePercent)
	if err != nil {
		return TradeParams{}, err
	}

	if c.AssetPrecision < 0 || c.AssetPrecision > sdkmath.LegacyPrecision {
		return TradeParams{}, fmt.Errorf("asset-precision must be in [0, %d], was %d", sdkmath.LegacyPrecision, c.AssetPrecision)
	}

	return TradeParams{
		MaxInRatio:             maxInRatio,
		MaxOutRatio:            maxOutRatio,
		DefaultSlippagePercent: slippage,
		AssetPrecision:         c.AssetPrecision,
	}, nil
}

func parseRatio(name, value string) (osmomath.Dec, error) {
	ratio, err := ParseDec(name, value)
	if err != nil {
		return osmomath.Dec{}, err
	}

	if !ratio.IsPositive() || ratio.GT(osmomath.OneDec()) {
		return osmomath.Dec{}, fmt.Errorf("%s must be in (0, 1], was %s", name, value)
	}

	return ratio, nil
}

// LiquidityConfig configures liquidity distribution for new markets.
type LiquidityConfig struct {
	// TotalWeight is the base asset weight; outcome weights sum to the same value.
	TotalWeight string `mapstructure:"total-weight"`
}
