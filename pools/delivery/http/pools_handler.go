package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/osmosis-labs/osmosis/osmomath"

	deliveryhttp "github.com/predictmarkets/tqs/delivery/http"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/pools/types"
)

// PoolsHandler  represent the httphandler for pools
type PoolsHandler struct {
	PUsecase mvc.PoolsUsecase
}

// SpotPricesResponse is the buy spot price of every outcome asset of a pool.
type SpotPricesResponse struct {
	PoolID     uint64                  `json:"pool_id"`
	BaseAsset  string                  `json:"base_asset"`
	SpotPrices map[string]osmomath.Dec `json:"spot_prices"`
}

const resourcePrefix = "/pools"

func formatPoolsResource(resource string) string {
	return resourcePrefix + resource
}

// NewPoolsHandler will initialize the pools/ resources endpoint
func NewPoolsHandler(e *echo.Echo, us mvc.PoolsUsecase) {
	handler := &PoolsHandler{
		PUsecase: us,
	}

	e.POST(formatPoolsResource(""), handler.IngestPool)
	e.GET(formatPoolsResource(""), handler.GetPools)
	e.GET(formatPoolsResource("/liquidity-distribution"), handler.GetLiquidityDistribution)
	e.GET(formatPoolsResource("/:id"), handler.GetPool)
	e.GET(formatPoolsResource("/:id/spot-prices"), handler.GetSpotPrices)
}

// @Summary Ingest a pool snapshot
// @Description Validates and stores the pool snapshot in the body. Open trade sessions
// @Description on the pool are recomputed against it.
// @ID ingest-pool
// @Accept  json
// @Param  pool  body  domain.Pool  true  "The pool snapshot"
// @Success 204
// @Router /pools [post]
func (a *PoolsHandler) IngestPool(c echo.Context) error {
	var pool domain.Pool
	if err := c.Bind(&pool); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := a.PUsecase.IngestPool(c.Request().Context(), pool); err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// @Summary Get pool(s) information
// @Description Returns a list of pools if the IDs parameter is not given. Otherwise,
// @Description it batch fetches specific pools by the given pool IDs parameter.
// @ID get-pools
// @Produce  json
// @Param  IDs  query  string  false  "Comma-separated list of pool IDs to fetch, e.g., '1,2,3'"
// @Success 200  {array}  domain.Pool  "List of pool(s) details"
// @Router /pools [get]
func (a *PoolsHandler) GetPools(c echo.Context) error {
	ctx := c.Request().Context()

	// Get pool ID parameters as strings.
	poolIDsStr := c.QueryParam("IDs")

	// if IDs are not given, get all pools
	if len(poolIDsStr) == 0 {
		pools, err := a.PUsecase.GetAllPools(ctx)
		if err != nil {
			return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, pools)
	}

	// Parse them to numbers
	poolIDs, err := domain.ParseNumbers(poolIDsStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	pools := make([]domain.Pool, 0, len(poolIDs))
	for _, poolID := range poolIDs {
		pool, err := a.PUsecase.GetPool(ctx, poolID)
		if err != nil {
			return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
		}

		pools = append(pools, pool)
	}

	return c.JSON(http.StatusOK, pools)
}

// @Summary Get a pool
// @ID get-pool
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Success 200  {object}  domain.Pool  "The pool snapshot"
// @Router /pools/{id} [get]
func (a *PoolsHandler) GetPool(c echo.Context) error {
	poolID, err := types.ParsePoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	pool, err := a.PUsecase.GetPool(c.Request().Context(), poolID)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, pool)
}

// @Summary Get outcome spot prices
// @Description Returns the buy spot price of every outcome asset in units of the base asset,
// @Description swap fee included. Outcomes with an empty reserve are priced at zero.
// @ID get-pool-spot-prices
// @Produce  json
// @Param  id  path  int  true  "Pool ID"
// @Success 200  {object}  SpotPricesResponse  "The outcome spot prices"
// @Router /pools/{id}/spot-prices [get]
func (a *PoolsHandler) GetSpotPrices(c echo.Context) error {
	ctx := c.Request().Context()

	poolID, err := types.ParsePoolID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	pool, err := a.PUsecase.GetPool(ctx, poolID)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	spotPrices, err := a.PUsecase.GetSpotPrices(ctx, poolID)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, SpotPricesResponse{
		PoolID:     poolID,
		BaseAsset:  pool.BaseAsset,
		SpotPrices: spotPrices,
	})
}

// @Summary Liquidity distribution for a new market
// @Description Returns the initial reserves and weights seeding a new market pool with
// @Description the given base amount. Outcomes are priced evenly unless prices are given.
// @ID get-liquidity-distribution
// @Produce  json
// @Param  amount    query  string  true   "The base amount, also seeded as the reserve of every outcome asset"
// @Param  outcomes  query  int     false  "Number of outcomes for an even split"
// @Param  prices    query  string  false  "Comma-separated outcome prices in (0, 1) summing to 1"
// @Success 200  {object}  domain.LiquidityDistribution  "The pool composition"
// @Router /pools/liquidity-distribution [get]
func (a *PoolsHandler) GetLiquidityDistribution(c echo.Context) error {
	var req types.LiquidityDistributionRequest
	if err := deliveryhttp.ParseRequest(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	distribution, err := a.PUsecase.GetLiquidityDistribution(c.Request().Context(), req.BaseAmount, req.NumOutcomes, req.Prices)
	if err != nil {
		return c.JSON(getStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, distribution)
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, types.ErrPoolIDNotValid) {
		return http.StatusBadRequest
	}

	statusCode := domain.GetStatusCode(err)
	if statusCode == http.StatusInternalServerError {
		logrus.Error(err)
	}

	return statusCode
}
