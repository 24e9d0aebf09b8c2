package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/osmosis-labs/osmosis/osmoutils/osmoassert"
	"github.com/stretchr/testify/suite"

	"github.com/predictmarkets/tqs/amm"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mocks"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/quote/usecase"
)

type QuoteUsecaseTestSuite struct {
	suite.Suite

	quoteUsecase mvc.QuoteUsecase
}

var (
	thousand  = osmomath.NewDec(1000)
	half      = osmomath.MustNewDecFromStr("0.5")
	exactTol  = osmomath.MustNewDecFromStr("0.000000000001")
	defaultID = uint64(1)

	// Equal weights and reserves with a 2% fee.
	explicitPool = domain.PoolState{
		BaseBalance:  thousand,
		BaseWeight:   half,
		AssetBalance: thousand,
		AssetWeight:  half,
		SwapFee:      osmomath.MustNewDecFromStr("0.02"),
	}

	binaryMarket = domain.Pool{
		ID:        defaultID,
		BaseAsset: "usdc",
		SwapFee:   osmomath.ZeroDec(),
		Assets: []domain.PoolAsset{
			{Asset: "usdc", Balance: thousand, Weight: osmomath.NewDec(50)},
			{Asset: "yes", Balance: thousand, Weight: osmomath.NewDec(25)},
			{Asset: "no", Balance: thousand, Weight: osmomath.NewDec(25)},
		},
	}
)

func TestQuoteUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteUsecaseTestSuite))
}

func (s *QuoteUsecaseTestSuite) SetupTest() {
	s.quoteUsecase = usecase.NewQuoteUsecase(&mocks.PoolsUsecaseMock{
		Pools: []domain.Pool{binaryMarket},
	})
}

func explicitRequest(pool domain.PoolState, amount osmomath.Dec) domain.QuoteRequest {
	return domain.QuoteRequest{
		Pool:      &pool,
		Direction: domain.Buy,
		Amount:    amount,
	}
}

func (s *QuoteUsecaseTestSuite) TestGetSpotPrice() {
	ctx := context.Background()

	quote, err := s.quoteUsecase.GetSpotPrice(ctx, explicitRequest(explicitPool, osmomath.Dec{}))
	s.Require().NoError(err)
	s.Require().Equal("1.020408163265306122", quote.SpotPrice.String())
	s.Require().Equal(quote.SpotPrice.String(), quote.SpotPriceAfter.String())
	s.Require().True(quote.AmountIn.IsZero())
	s.Require().True(quote.PriceImpact.IsZero())

	buyQuote, err := s.quoteUsecase.GetSpotPrice(ctx, domain.QuoteRequest{PoolID: defaultID, OutcomeAsset: "yes", Direction: domain.Buy})
	s.Require().NoError(err)
	s.Require().Equal("usdc", buyQuote.AssetIn)
	s.Require().Equal("yes", buyQuote.AssetOut)
	s.Require().Equal("0.500000000000000000", buyQuote.SpotPrice.String())

	sellQuote, err := s.quoteUsecase.GetSpotPrice(ctx, domain.QuoteRequest{PoolID: defaultID, OutcomeAsset: "yes", Direction: domain.Sell})
	s.Require().NoError(err)
	s.Require().Equal("yes", sellQuote.AssetIn)
	s.Require().Equal("usdc", sellQuote.AssetOut)
	s.Require().Equal("2.000000000000000000", sellQuote.SpotPrice.String())
}

func (s *QuoteUsecaseTestSuite) TestGetOutGivenIn() {
	ctx := context.Background()

	quote, err := s.quoteUsecase.GetOutGivenIn(ctx, explicitRequest(explicitPool, osmomath.NewDec(100)))
	s.Require().NoError(err)
	s.Require().Equal("100.000000000000000000", quote.AmountIn.String())
	osmoassert.DecApproxEq(s.T(), osmomath.MustNewDecFromStr("89.253187613843351548"), quote.AmountOut, exactTol)

	// The trade moves the price against the trader.
	s.Require().True(quote.SpotPriceAfter.GT(quote.SpotPrice))
	s.Require().True(quote.PriceImpact.IsPositive())

	quote, err = s.quoteUsecase.GetOutGivenIn(ctx, explicitRequest(explicitPool, osmomath.ZeroDec()))
	s.Require().NoError(err)
	s.Require().True(quote.AmountOut.IsZero())
	s.Require().True(quote.PriceImpact.IsZero())
}

func (s *QuoteUsecaseTestSuite) TestGetInGivenOut() {
	ctx := context.Background()

	quote, err := s.quoteUsecase.GetInGivenOut(ctx, explicitRequest(explicitPool, osmomath.MustNewDecFromStr("90.83")))
	s.Require().NoError(err)
	s.Require().Equal("90.830000000000000000", quote.AmountOut.String())
	osmoassert.DecApproxEq(s.T(), osmomath.MustNewDecFromStr("101.943171760383377258"), quote.AmountIn, exactTol)
	s.Require().True(quote.PriceImpact.IsPositive())
}

func (s *QuoteUsecaseTestSuite) TestFractionalWeightsNearReserve() {
	ctx := context.Background()

	pool := explicitPool
	pool.BaseWeight = osmomath.MustNewDecFromStr("0.3")
	pool.AssetWeight = osmomath.MustNewDecFromStr("0.7")

	quote, err := s.quoteUsecase.GetOutGivenIn(ctx, explicitRequest(pool, osmomath.NewDec(1_000_000_000_000)))
	s.Require().NoError(err)
	s.Require().True(quote.AmountOut.LT(thousand))
	s.Require().True(quote.AmountOut.IsPositive())

	quote, err = s.quoteUsecase.GetInGivenOut(ctx, explicitRequest(pool, osmomath.MustNewDecFromStr("999.999999")))
	s.Require().NoError(err)
	s.Require().True(quote.AmountIn.GT(thousand))

	_, err = s.quoteUsecase.GetInGivenOut(ctx, explicitRequest(pool, osmomath.MustNewDecFromStr("999.999999999999999999")))
	s.Require().ErrorAs(err, &domain.InvalidPricingInputError{})
}

func (s *QuoteUsecaseTestSuite) TestInvalidPricingInput() {
	ctx := context.Background()

	zeroWeight := explicitPool
	zeroWeight.AssetWeight = osmomath.ZeroDec()

	highFee := explicitPool
	highFee.SwapFee = osmomath.OneDec()

	testcases := []struct {
		name  string
		quote func() (domain.Quote, error)
	}{
		{
			name: "amount out equals reserve",
			quote: func() (domain.Quote, error) {
				return s.quoteUsecase.GetInGivenOut(ctx, explicitRequest(explicitPool, thousand))
			},
		},
		{
			name: "zero weight",
			quote: func() (domain.Quote, error) {
				return s.quoteUsecase.GetOutGivenIn(ctx, explicitRequest(zeroWeight, osmomath.NewDec(1)))
			},
		},
		{
			name: "fee of one",
			quote: func() (domain.Quote, error) {
				return s.quoteUsecase.GetSpotPrice(ctx, explicitRequest(highFee, osmomath.Dec{}))
			},
		},
		{
			name: "negative amount",
			quote: func() (domain.Quote, error) {
				return s.quoteUsecase.GetOutGivenIn(ctx, explicitRequest(explicitPool, osmomath.NewDec(-1)))
			},
		},
	}

	for _, tc := range testcases {
		s.Run(tc.name, func() {
			_, err := tc.quote()
			s.Require().ErrorAs(err, &domain.InvalidPricingInputError{})
			s.Require().True(errors.Is(err, amm.ErrDomain))
		})
	}
}

func (s *QuoteUsecaseTestSuite) TestStoredPoolErrors() {
	ctx := context.Background()

	_, err := s.quoteUsecase.GetSpotPrice(ctx, domain.QuoteRequest{PoolID: 2, OutcomeAsset: "yes"})
	s.Require().ErrorAs(err, &domain.PoolNotFoundError{})

	_, err = s.quoteUsecase.GetSpotPrice(ctx, domain.QuoteRequest{PoolID: defaultID, OutcomeAsset: "maybe"})
	s.Require().ErrorAs(err, &domain.OutcomeAssetNotInPoolError{})
}
