package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mocks"
	poolsdelivery "github.com/predictmarkets/tqs/pools/delivery/http"
)

type PoolsHandlerSuite struct {
	suite.Suite

	ingested []domain.Pool
	handler  *poolsdelivery.PoolsHandler
}

func newPool(id uint64) domain.Pool {
	return domain.Pool{
		ID:        id,
		BaseAsset: "usdc",
		SwapFee:   osmomath.MustNewDecFromStr("0.02"),
		Assets: []domain.PoolAsset{
			{Asset: "usdc", Balance: osmomath.NewDec(1000), Weight: osmomath.NewDec(50)},
			{Asset: "yes", Balance: osmomath.NewDec(1000), Weight: osmomath.NewDec(25)},
			{Asset: "no", Balance: osmomath.NewDec(1000), Weight: osmomath.NewDec(25)},
		},
	}
}

func TestPoolsHandlerSuite(t *testing.T) {
	suite.Run(t, new(PoolsHandlerSuite))
}

func (s *PoolsHandlerSuite) SetupTest() {
	s.ingested = nil
	s.handler = &poolsdelivery.PoolsHandler{
		PUsecase: &mocks.PoolsUsecaseMock{
			Pools: []domain.Pool{newPool(1), newPool(2)},
			IngestPoolFunc: func(ctx context.Context, pool domain.Pool) error {
				if err := pool.Validate(); err != nil {
					return err
				}
				s.ingested = append(s.ingested, pool)
				return nil
			},
			GetSpotPricesFunc: func(ctx context.Context, poolID uint64) (map[string]osmomath.Dec, error) {
				return map[string]osmomath.Dec{
					"yes": osmomath.MustNewDecFromStr("0.5"),
					"no":  osmomath.MustNewDecFromStr("0.5"),
				}, nil
			},
			GetLiquidityDistributionFunc: func(ctx context.Context, baseAmount osmomath.Dec, numOutcomes int, prices []osmomath.Dec) (domain.LiquidityDistribution, error) {
				if numOutcomes == 1 {
					return domain.LiquidityDistribution{}, domain.InvalidLiquidityDistributionError{Reason: "at least 2 outcomes are required"}
				}
				return domain.LiquidityDistribution{BaseAmount: baseAmount, BaseWeight: osmomath.NewDec(100)}, nil
			},
		},
	}
}

func (s *PoolsHandlerSuite) newContext(method, target, body string, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if paramValue != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramValue)
	}

	return c, rec
}

func (s *PoolsHandlerSuite) TestIngestPool() {
	body, err := json.Marshal(newPool(7))
	s.Require().NoError(err)

	c, rec := s.newContext(http.MethodPost, "/pools", string(body), "")
	s.Require().NoError(s.handler.IngestPool(c))
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Len(s.ingested, 1)
	s.Require().Equal(uint64(7), s.ingested[0].ID)
	s.Require().Equal("0.020000000000000000", s.ingested[0].SwapFee.String())

	// Invalid pool: single asset.
	c, rec = s.newContext(http.MethodPost, "/pools", `{"id":8,"base_asset":"usdc","swap_fee":"0.01","assets":[{"asset":"usdc","balance":"1","weight":"1"}]}`, "")
	s.Require().NoError(s.handler.IngestPool(c))
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	// Malformed body.
	c, rec = s.newContext(http.MethodPost, "/pools", `{"id":`, "")
	s.Require().NoError(s.handler.IngestPool(c))
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	s.Require().Len(s.ingested, 1)
}

func (s *PoolsHandlerSuite) TestGetPools() {
	testcases := []struct {
		name   string
		target string

		expectedStatusCode int
		expectedIDs        []uint64
	}{
		{
			name:               "all pools",
			target:             "/pools",
			expectedStatusCode: http.StatusOK,
			expectedIDs:        []uint64{1, 2},
		},
		{
			name:               "pools by ID",
			target:             "/pools?IDs=2",
			expectedStatusCode: http.StatusOK,
			expectedIDs:        []uint64{2},
		},
		{
			name:               "invalid IDs",
			target:             "/pools?IDs=1,x",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown pool",
			target:             "/pools?IDs=1,3",
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testcases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(http.MethodGet, tc.target, "", "")
			s.Require().NoError(s.handler.GetPools(c))
			s.Require().Equal(tc.expectedStatusCode, rec.Code)

			if tc.expectedStatusCode != http.StatusOK {
				return
			}

			var pools []domain.Pool
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pools))

			ids := make([]uint64, 0, len(pools))
			for _, pool := range pools {
				ids = append(ids, pool.ID)
			}
			s.Require().Equal(tc.expectedIDs, ids)
		})
	}
}

func (s *PoolsHandlerSuite) TestGetPool() {
	c, rec := s.newContext(http.MethodGet, "/pools/1", "", "1")
	s.Require().NoError(s.handler.GetPool(c))
	s.Require().Equal(http.StatusOK, rec.Code)

	var pool domain.Pool
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pool))
	s.Require().Equal(uint64(1), pool.ID)
	s.Require().Len(pool.Assets, 3)

	c, rec = s.newContext(http.MethodGet, "/pools/abc", "", "abc")
	s.Require().NoError(s.handler.GetPool(c))
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	c, rec = s.newContext(http.MethodGet, "/pools/9", "", "9")
	s.Require().NoError(s.handler.GetPool(c))
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *PoolsHandlerSuite) TestGetSpotPrices() {
	c, rec := s.newContext(http.MethodGet, "/pools/1/spot-prices", "", "1")
	s.Require().NoError(s.handler.GetSpotPrices(c))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{
		"pool_id": 1,
		"base_asset": "usdc",
		"spot_prices": {
			"no": "0.500000000000000000",
			"yes": "0.500000000000000000"
		}
	}`, rec.Body.String())

	c, rec = s.newContext(http.MethodGet, "/pools/9/spot-prices", "", "9")
	s.Require().NoError(s.handler.GetSpotPrices(c))
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *PoolsHandlerSuite) TestGetLiquidityDistribution() {
	c, rec := s.newContext(http.MethodGet, "/pools/liquidity-distribution?amount=1000&outcomes=2", "", "")
	s.Require().NoError(s.handler.GetLiquidityDistribution(c))
	s.Require().Equal(http.StatusOK, rec.Code)

	var distribution domain.LiquidityDistribution
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &distribution))
	s.Require().Equal("1000.000000000000000000", distribution.BaseAmount.String())

	c, rec = s.newContext(http.MethodGet, "/pools/liquidity-distribution?amount=1000&outcomes=1", "", "")
	s.Require().NoError(s.handler.GetLiquidityDistribution(c))
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	c, rec = s.newContext(http.MethodGet, "/pools/liquidity-distribution?outcomes=2", "", "")
	s.Require().NoError(s.handler.GetLiquidityDistribution(c))
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}
