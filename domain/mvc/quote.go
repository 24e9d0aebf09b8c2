package mvc

import (
	"context"

	"github.com/predictmarkets/tqs/domain"
)

// QuoteUsecase prices single trades without keeping any session state.
type QuoteUsecase interface {
	GetSpotPrice(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error)
	GetOutGivenIn(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error)
	GetInGivenOut(ctx context.Context, req domain.QuoteRequest) (domain.Quote, error)
}
