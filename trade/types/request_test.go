package types_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/assert"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/trade/types"
)

func newContext(method string, queryParams map[string]string, sessionID string) echo.Context {
	values := url.Values{}
	for k, v := range queryParams {
		values.Set(k, v)
	}

	e := echo.New()
	req := httptest.NewRequest(method, "/?"+values.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if sessionID != "" {
		c.SetParamNames("id")
		c.SetParamValues(sessionID)
	}

	return c
}

func TestCreateSessionRequest(t *testing.T) {
	testcases := []struct {
		name        string
		queryParams map[string]string

		expectedResult          *types.CreateSessionRequest
		expectedUnmarshalError  bool
		expectedValidationError bool
	}{
		{
			name: "valid buy with bare balance",
			queryParams: map[string]string{
				"poolID":    "7",
				"outcome":   "yes",
				"direction": "buy",
				"balance":   "250.5",
			},
			expectedResult: &types.CreateSessionRequest{
				PoolID:    7,
				Outcome:   "yes",
				Direction: domain.Buy,
				Balance:   sdk.DecCoin{Amount: osmomath.MustNewDecFromStr("250.5")},
			},
		},
		{
			name: "valid sell with coin balance",
			queryParams: map[string]string{
				"poolID":    "7",
				"outcome":   "yes",
				"direction": "SELL",
				"balance":   "12yes",
			},
			expectedResult: &types.CreateSessionRequest{
				PoolID:    7,
				Outcome:   "yes",
				Direction: domain.Sell,
				Balance:   sdk.DecCoin{Denom: "yes", Amount: osmomath.NewDec(12)},
			},
		},
		{
			name: "direction defaults to buy",
			queryParams: map[string]string{
				"poolID":  "7",
				"outcome": "yes",
				"balance": "1",
			},
			expectedResult: &types.CreateSessionRequest{
				PoolID:    7,
				Outcome:   "yes",
				Direction: domain.Buy,
				Balance:   sdk.DecCoin{Amount: osmomath.OneDec()},
			},
		},
		{
			name: "invalid pool id",
			queryParams: map[string]string{
				"poolID":  "seven",
				"outcome": "yes",
				"balance": "1",
			},
			expectedUnmarshalError: true,
		},
		{
			name: "invalid direction",
			queryParams: map[string]string{
				"poolID":    "7",
				"outcome":   "yes",
				"direction": "hold",
				"balance":   "1",
			},
			expectedUnmarshalError: true,
		},
		{
			name: "negative balance",
			queryParams: map[string]string{
				"poolID":  "7",
				"outcome": "yes",
				"balance": "-1",
			},
			expectedUnmarshalError: true,
		},
		{
			name: "missing balance",
			queryParams: map[string]string{
				"poolID":  "7",
				"outcome": "yes",
			},
			expectedUnmarshalError: true,
		},
		{
			name: "missing outcome",
			queryParams: map[string]string{
				"poolID":  "7",
				"balance": "1",
			},
			expectedValidationError: true,
		},
		{
			name: "sell with balance of another asset",
			queryParams: map[string]string{
				"poolID":    "7",
				"outcome":   "yes",
				"direction": "sell",
				"balance":   "12usdc",
			},
			expectedValidationError: true,
		},
		{
			name: "buy with balance of the outcome",
			queryParams: map[string]string{
				"poolID":    "7",
				"outcome":   "yes",
				"direction": "buy",
				"balance":   "12yes",
			},
			expectedValidationError: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(http.MethodPost, tc.queryParams, "")

			var req types.CreateSessionRequest
			err := req.UnmarshalHTTPRequest(c)
			if tc.expectedUnmarshalError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			err = req.Validate()
			if tc.expectedValidationError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			assert.Equal(t, tc.expectedResult.PoolID, req.PoolID)
			assert.Equal(t, tc.expectedResult.Outcome, req.Outcome)
			assert.Equal(t, tc.expectedResult.Direction, req.Direction)
			assert.Equal(t, tc.expectedResult.Balance.Denom, req.Balance.Denom)
			assert.Equal(t, tc.expectedResult.Balance.Amount.String(), req.Balance.Amount.String())
		})
	}
}

func TestEditRequest(t *testing.T) {
	testcases := []struct {
		name        string
		sessionID   string
		queryParams map[string]string

		expectedField domain.TradeField
		expectedValue string
		expectedError bool
	}{
		{
			name:          "input",
			sessionID:     "abc",
			queryParams:   map[string]string{"field": "input", "value": "100"},
			expectedField: domain.FieldInput,
			expectedValue: "100.000000000000000000",
		},
		{
			name:          "output alias",
			sessionID:     "abc",
			queryParams:   map[string]string{"field": "out", "value": "0.5"},
			expectedField: domain.FieldOutput,
			expectedValue: "0.500000000000000000",
		},
		{
			name:          "percentage",
			sessionID:     "abc",
			queryParams:   map[string]string{"field": "percentage", "value": "50"},
			expectedField: domain.FieldPercent,
			expectedValue: "50.000000000000000000",
		},
		{
			name:          "unknown field",
			sessionID:     "abc",
			queryParams:   map[string]string{"field": "fee", "value": "50"},
			expectedError: true,
		},
		{
			name:          "invalid value",
			sessionID:     "abc",
			queryParams:   map[string]string{"field": "input", "value": "lots"},
			expectedError: true,
		},
		{
			name:          "missing session",
			queryParams:   map[string]string{"field": "input", "value": "1"},
			expectedError: true,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(http.MethodPost, tc.queryParams, tc.sessionID)

			var req types.EditRequest
			err := req.UnmarshalHTTPRequest(c)
			if tc.expectedError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.sessionID, req.SessionID)
			assert.Equal(t, tc.expectedField, req.Field)
			assert.Equal(t, tc.expectedValue, req.Value.String())
		})
	}
}

func TestSwapBoundRequest(t *testing.T) {
	c := newContext(http.MethodGet, map[string]string{}, "abc")

	var req types.SwapBoundRequest
	assert.NoError(t, req.UnmarshalHTTPRequest(c))
	assert.True(t, req.SlippagePercent.IsNil())

	c = newContext(http.MethodGet, map[string]string{"slippage": "0.5"}, "abc")
	req = types.SwapBoundRequest{}
	assert.NoError(t, req.UnmarshalHTTPRequest(c))
	assert.Equal(t, "0.500000000000000000", req.SlippagePercent.String())

	c = newContext(http.MethodGet, map[string]string{"slippage": "100"}, "abc")
	req = types.SwapBoundRequest{}
	assert.Error(t, req.UnmarshalHTTPRequest(c))
}

func TestParseBalance(t *testing.T) {
	testcases := []struct {
		balance string

		expectedDenom  string
		expectedAmount string
		expectedError  bool
	}{
		{balance: "0", expectedAmount: "0.000000000000000000"},
		{balance: "1000", expectedAmount: "1000.000000000000000000"},
		{balance: "1.25usdc", expectedDenom: "usdc", expectedAmount: "1.250000000000000000"},
		{balance: "", expectedError: true},
		{balance: "-3", expectedError: true},
		{balance: "usdc", expectedError: true},
	}

	for _, tc := range testcases {
		t.Run(tc.balance, func(t *testing.T) {
			balance, err := types.ParseBalance(tc.balance)
			if tc.expectedError {
				assert.ErrorIs(t, err, types.ErrBalanceNotValid)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedDenom, balance.Denom)
			assert.Equal(t, tc.expectedAmount, balance.Amount.String())
		})
	}
}
