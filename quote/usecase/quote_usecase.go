package usecase

import (
	"context"
	"errors"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/amm"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
)

type quoteUseCase struct {
	poolsUsecase mvc.PoolsUsecase
}

var _ mvc.QuoteUsecase = &quoteUseCase{}

// NewQuoteUsecase will create a new quote use case object
func NewQuoteUsecase(poolsUsecase mvc.PoolsUsecase) mvc.QuoteUsecase {
	return &quoteUseCase{
		poolsUsecase: poolsUsecase,
	}
}

// GetSpotPrice implements mvc.QuoteUsecase.
func (q *quoteUseCase) GetSpotPrice(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error) {
	pool, err := q.getPoolState(ctx, req)
	if err != nil {
		return domain.Quote{}, err
	}

	spotPrice, err := amm.SpotPrice(pool, req.Direction)
	if err != nil {
		return domain.Quote{}, wrapPricingError(err)
	}

	quote := newQuote(pool, req.Direction, spotPrice)
	quote.SpotPriceAfter = spotPrice
	return quote, nil
}

// GetOutGivenIn implements mvc.QuoteUsecase.
func (q *quoteUseCase) GetOutGivenIn(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error) {
	pool, err := q.getPoolState(ctx, req)
	if err != nil {
		return domain.Quote{}, err
	}

	amountOut, err := amm.OutGivenIn(pool, req.Direction, req.Amount)
	if err != nil {
		return domain.Quote{}, wrapPricingError(err)
	}

	return q.completeQuote(pool, req.Direction, req.Amount, amountOut)
}

// GetInGivenOut implements mvc.QuoteUsecase.
func (q *quoteUseCase) GetInGivenOut(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error) {
	pool, err := q.getPoolState(ctx, req)
	if err != nil {
		return domain.Quote{}, err
	}

	amountIn, err := amm.InGivenOut(pool, req.Direction, req.Amount)
	if err != nil {
		return domain.Quote{}, wrapPricingError(err)
	}

	return q.completeQuote(pool, req.Direction, amountIn, req.Amount)
}

// getPoolState returns the explicit pool state of the request if given,
// otherwise the stored pool pair.
func (q *quoteUseCase) getPoolState(ctx context.Context, req domain.QuoteRequest) (domain.PoolState, error) {
	if req.Pool != nil {
		return *req.Pool, nil
	}

	return q.poolsUsecase.GetPoolState(ctx, req.PoolID, req.OutcomeAsset)
}

func (q *quoteUseCase) completeQuote(pool domain.PoolState, direction domain.TradeDirection, amountIn, amountOut osmomath.Dec) (domain.Quote, error) {
	spotPrice, err := amm.SpotPrice(pool, direction)
	if err != nil {
		return domain.Quote{}, wrapPricingError(err)
	}

	spotPriceAfter, err := amm.SpotPriceAfter(pool, direction, amountIn, amountOut)
	if err != nil {
		return domain.Quote{}, wrapPricingError(err)
	}

	quote := newQuote(pool, direction, spotPrice)
	quote.AmountIn = amountIn
	quote.AmountOut = amountOut
	quote.SpotPriceAfter = spotPriceAfter
	quote.PriceImpact = amm.PriceImpact(spotPrice, amountIn, amountOut)

	return quote, nil
}

func newQuote(pool domain.PoolState, direction domain.TradeDirection, spotPrice osmomath.Dec) domain.Quote {
	return domain.Quote{
		PoolID:      pool.PoolID,
		Direction:   direction,
		AssetIn:     pool.AssetIn(direction),
		AssetOut:    pool.AssetOut(direction),
		AmountIn:    osmomath.ZeroDec(),
		AmountOut:   osmomath.ZeroDec(),
		SwapFee:     pool.SwapFee,
		SpotPrice:   spotPrice,
		PriceImpact: osmomath.ZeroDec(),
	}
}

// wrapPricingError marks pricing precondition violations as caused by the caller.
func wrapPricingError(err error) error {
	if errors.Is(err, amm.ErrDomain) {
		return domain.InvalidPricingInputError{Err: err}
	}
	return err
}
