package http

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/predictmarkets/tqs/docs"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/log"
)

type SystemHandler struct {
	logger log.Logger
	config domain.Config

	// redisClient is nil unless pool snapshots are stored in Redis.
	redisClient redis.Cmdable
	PUsecase    mvc.PoolsUsecase
}

// HealthStatus is the response of the healthcheck endpoint.
type HealthStatus struct {
	RedisStatus string `json:"redis_status"`
	PoolCount   int    `json:"pool_count"`
}

const (
	versionPlaceholder    = "version="
	whiteSpacePlaceholder = " "

	statusRunning  = "running"
	statusDisabled = "disabled"
)

// NewSystemHandler will initialize the /debug/ppof resources endpoint
func NewSystemHandler(e *echo.Echo, config domain.Config, logger log.Logger, redisClient redis.Cmdable, pu mvc.PoolsUsecase) {
	handler := &SystemHandler{
		logger:      logger,
		config:      config,
		redisClient: redisClient,
		PUsecase:    pu,
	}

	// if debug mod, enable additional profiles that are too intensive
	// for production.
	if !config.LoggerIsProduction {
		runtime.SetMutexProfileFraction(2)
		runtime.SetBlockProfileRate(2)
	}

	e.GET("/debug/pprof/*", echo.WrapHandler(http.DefaultServeMux))
	e.GET("/debug/pprof/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	e.GET("/debug/pprof/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	e.GET("/debug/pprof/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	e.GET("/debug/pprof/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	e.GET("/healthcheck", handler.GetHealthStatus)
	e.GET("/config", handler.GetConfig)
	e.GET("/version", handler.GetVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// GetConfig returns the config of the trade quote server
func (h *SystemHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config)
}

func (h *SystemHandler) GetVersion(c echo.Context) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read build info")
	}

	for _, setting := range buildInfo.Settings {
		if setting.Key == "-ldflags" {
			version, err := extractVersion(setting.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to extract version information: %v", err))
			}

			return c.JSON(http.StatusOK, version)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "failed to find version information")
}

// extractVersion extracts the version string set with -X <module>/version=<version> from the ldflags
func extractVersion(ldFlagsValueStr string) (string, error) {
	index := strings.Index(ldFlagsValueStr, versionPlaceholder)
	if index == -1 {
		return "", fmt.Errorf("no version string found")
	}

	substring := ldFlagsValueStr[index+len(versionPlaceholder):]

	// The version may be the last flag.
	if end := strings.Index(substring, whiteSpacePlaceholder); end != -1 {
		substring = substring[:end]
	}

	if substring == "" {
		return "", fmt.Errorf("empty version string")
	}

	return substring, nil
}

// GetHealthStatus handles health check requests. Fails if the Redis pool store
// is configured and unreachable.
func (h *SystemHandler) GetHealthStatus(c echo.Context) error {
	ctx := c.Request().Context()

	status := HealthStatus{RedisStatus: statusDisabled}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			h.logger.Error("Error connecting to Redis", zap.Error(err))
			return echo.NewHTTPError(http.StatusServiceUnavailable, "Error connecting to Redis")
		}
		status.RedisStatus = statusRunning
	}

	pools, err := h.PUsecase.GetAllPools(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Failed to get pools: %s", err))
	}
	status.PoolCount = len(pools)

	return c.JSON(http.StatusOK, status)
}
