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
	ErrPoolIDNotValid  = errors.New("poolID is invalid - must be a non-negative integer")
	ErrOutcomeRequired = errors.New("outcome is required when poolID is given")
)

// PoolRequest selects the pool state a quote is priced against. Either a
// stored pool is referenced by poolID and outcome, or the pool parameters
// balanceIn, weightIn, balanceOut, weightOut and swapFee are given explicitly.
type PoolRequest struct {
	domain.QuoteRequest
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *PoolRequest) UnmarshalHTTPRequest(c echo.Context) error {
	if poolIDStr := strings.TrimSpace(c.QueryParam("poolID")); poolIDStr != "" {
		poolID, err := strconv.ParseUint(poolIDStr, 10, 64)
		if err != nil {
			return ErrPoolIDNotValid
		}

		r.PoolID = poolID
		r.OutcomeAsset = strings.TrimSpace(c.QueryParam("outcome"))

		if direction := c.QueryParam("direction"); direction != "" {
			r.Direction, err = domain.ParseTradeDirection(direction)
			if err != nil {
				return err
			}
		}

		return nil
	}

	pool, err := parseExplicitPool(c)
	if err != nil {
		return err
	}

	// Explicit parameters are already oriented from the asset spent to the
	// asset received.
	r.Pool = &pool
	r.Direction = domain.Buy

	return nil
}

// Validate implements delivery/http.Validator.
func (r *PoolRequest) Validate() error {
	if r.Pool == nil && r.OutcomeAsset == "" {
		return ErrOutcomeRequired
	}
	return nil
}

// AmountRequest is a PoolRequest pricing a trade of the given amount.
type AmountRequest struct {
	PoolRequest
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *AmountRequest) UnmarshalHTTPRequest(c echo.Context) error {
	if err := r.PoolRequest.UnmarshalHTTPRequest(c); err != nil {
		return err
	}

	var err error
	r.Amount, err = domain.ParseDecQueryParam(c, "amount")
	return err
}

func parseExplicitPool(c echo.Context) (domain.PoolState, error) {
	var (
		pool domain.PoolState
		err  error
	)

	params := []struct {
		name  string
		value *osmomath.Dec
	}{
		{name: "balanceIn", value: &pool.BaseBalance},
		{name: "weightIn", value: &pool.BaseWeight},
		{name: "balanceOut", value: &pool.AssetBalance},
		{name: "weightOut", value: &pool.AssetWeight},
	}

	for _, param := range params {
		if *param.value, err = domain.ParseDecQueryParam(c, param.name); err != nil {
			return domain.PoolState{}, err
		}
	}

	pool.SwapFee = osmomath.ZeroDec()
	if swapFee := c.QueryParam("swapFee"); swapFee != "" {
		if pool.SwapFee, err = domain.ParseDec("swapFee", swapFee); err != nil {
			return domain.PoolState{}, err
		}
	}

	return pool, nil
}
