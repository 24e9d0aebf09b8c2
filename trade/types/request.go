package types

import (
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

// CreateSessionRequest starts a trade session.
type CreateSessionRequest struct {
	PoolID    uint64
	Outcome   string
	Direction domain.TradeDirection
	// Balance is the user's balance of the asset spent. Denom is empty if the
	// balance was given as a bare decimal.
	Balance sdk.DecCoin
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *CreateSessionRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.PoolID, err = parsePoolID(c.QueryParam("poolID")); err != nil {
		return err
	}

	r.Outcome = strings.TrimSpace(c.QueryParam("outcome"))

	if r.Direction, err = parseDirection(c.QueryParam("direction")); err != nil {
		return err
	}

	r.Balance, err = ParseBalance(c.QueryParam("balance"))
	return err
}

// Validate implements validator.Validator.
func (r *CreateSessionRequest) Validate() error {
	if r.Outcome == "" {
		return ErrOutcomeRequired
	}

	if r.Balance.Denom == "" {
		return nil
	}

	// Selling spends the outcome asset, buying spends anything but.
	if r.Direction == domain.Sell {
		if r.Balance.Denom != r.Outcome {
			return ErrBalanceDenomNotSpent
		}
		return nil
	}

	return domain.ValidateInputDenoms(r.Balance.Denom, r.Outcome)
}

// EditRequest is a user edit of one of the amount fields.
type EditRequest struct {
	SessionID string
	Field     domain.TradeField
	Value     osmomath.Dec
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *EditRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.SessionID, err = parseSessionID(c); err != nil {
		return err
	}

	if r.Field, err = domain.ParseTradeField(c.QueryParam("field")); err != nil {
		return err
	}

	r.Value, err = domain.ParseDecQueryParam(c, "value")
	return err
}

// DirectionRequest switches the trade direction of a session.
type DirectionRequest struct {
	SessionID string
	Direction domain.TradeDirection
	Balance   sdk.DecCoin
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *DirectionRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.SessionID, err = parseSessionID(c); err != nil {
		return err
	}

	if r.Direction, err = parseDirection(c.QueryParam("direction")); err != nil {
		return err
	}

	r.Balance, err = ParseBalance(c.QueryParam("balance"))
	return err
}

// OutcomeRequest switches the traded outcome asset of a session.
type OutcomeRequest struct {
	SessionID string
	Outcome   string
	Balance   sdk.DecCoin
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *OutcomeRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.SessionID, err = parseSessionID(c); err != nil {
		return err
	}

	r.Outcome = strings.TrimSpace(c.QueryParam("outcome"))

	r.Balance, err = ParseBalance(c.QueryParam("balance"))
	return err
}

// Validate implements validator.Validator.
func (r *OutcomeRequest) Validate() error {
	if r.Outcome == "" {
		return ErrOutcomeRequired
	}
	return nil
}

// BalanceRequest updates the user's balance of the asset spent.
type BalanceRequest struct {
	SessionID string
	Balance   sdk.DecCoin
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *BalanceRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.SessionID, err = parseSessionID(c); err != nil {
		return err
	}

	r.Balance, err = ParseBalance(c.QueryParam("balance"))
	return err
}

// SwapBoundRequest requests the slippage bounded swap of a session.
type SwapBoundRequest struct {
	SessionID string
	// SlippagePercent is nil if not given.
	SlippagePercent osmomath.Dec
}

// UnmarshalHTTPRequest implements delivery/http.RequestUnmarshaler.
func (r *SwapBoundRequest) UnmarshalHTTPRequest(c echo.Context) error {
	var err error
	if r.SessionID, err = parseSessionID(c); err != nil {
		return err
	}

	if slippage := c.QueryParam("slippage"); slippage != "" {
		r.SlippagePercent, err = domain.ParseSlippagePercent(slippage)
		return err
	}

	return nil
}

// ParseBalance parses either a bare decimal such as "250.5" or a decimal coin
// such as "250.5usdc".
func ParseBalance(balance string) (sdk.DecCoin, error) {
	balance = strings.TrimSpace(balance)
	if balance == "" {
		return sdk.DecCoin{}, ErrBalanceNotValid
	}

	if amount, err := sdkmath.LegacyNewDecFromStr(balance); err == nil {
		if amount.IsNegative() {
			return sdk.DecCoin{}, ErrBalanceNotValid
		}
		return sdk.DecCoin{Amount: amount}, nil
	}

	coin, err := sdk.ParseDecCoin(balance)
	if err != nil {
		return sdk.DecCoin{}, ErrBalanceNotValid
	}

	return coin, nil
}

func parsePoolID(poolID string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(poolID), 10, 64)
	if err != nil {
		return 0, ErrPoolIDNotValid
	}
	return id, nil
}

func parseSessionID(c echo.Context) (string, error) {
	sessionID := strings.TrimSpace(c.Param("id"))
	if sessionID == "" {
		return "", ErrSessionIDRequired
	}
	return sessionID, nil
}

func parseDirection(direction string) (domain.TradeDirection, error) {
	if direction == "" {
		return domain.Buy, nil
	}
	return domain.ParseTradeDirection(direction)
}
