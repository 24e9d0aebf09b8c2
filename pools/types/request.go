package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

var (
	ErrPoolIDNotValid            = errors.New("pool ID is invalid - must be a non-negative integer")
	ErrNumOutcomesNotValid       = errors.New("outcomes is invalid - must be a positive integer")
	ErrOutcomesOrPricesRequired  = errors.New("either outcomes or prices must be given")
	ErrNumOutcomesPricesMismatch = errors.New("number of outcomes must match number of prices")
)

// LiquidityDistributionRequest asks for the initial composition of a new market pool.
type LiquidityDistributionRequest struct {
	BaseAmount  osmomath.Dec
	NumOutcomes int
	// Prices is empty for an even split across NumOutcomes outcomes.
	Prices []osmomath.Dec
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *LiquidityDistributionRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.BaseAmount, err = domain.ParseDecQueryParam(c, "amount"); err != nil {
		return err
	}

	if numOutcomesStr := strings.TrimSpace(c.QueryParam("outcomes")); numOutcomesStr != "" {
		r.NumOutcomes, err = strconv.Atoi(numOutcomesStr)
		if err != nil || r.NumOutcomes < 1 {
			return ErrNumOutcomesNotValid
		}
	}

	r.Prices, err = domain.ParseDecimals("prices", c.QueryParam("prices"))
	return err
}

// Validate implements delivery/http.Validator.
func (r *LiquidityDistributionRequest) Validate() error {
	if r.NumOutcomes == 0 && len(r.Prices) == 0 {
		return ErrOutcomesOrPricesRequired
	}

	if r.NumOutcomes != 0 && len(r.Prices) != 0 && r.NumOutcomes != len(r.Prices) {
		return ErrNumOutcomesPricesMismatch
	}

	return nil
}

// ParsePoolID parses the pool ID path parameter.
func ParsePoolID(c echo.Context) (uint64, error) {
	poolID, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		return 0, ErrPoolIDNotValid
	}
	return poolID, nil
}
