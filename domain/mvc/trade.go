package mvc

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

// TradeUsecase manages trade sessions, each owning one reconciliation controller.
type TradeUsecase interface {
	domain.PoolUpdateListener

	// CreateSession starts a session trading the outcome asset of the pool in
	// the given direction. balanceIn is the user's balance of the asset spent.
	CreateSession(ctx context.Context, poolID uint64, outcomeAsset string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)

	GetSnapshot(ctx context.Context, sessionID string) (domain.TradeSessionResult, error)

	// ApplyEdit records a user edit of one amount field and reconciles the others.
	ApplyEdit(ctx context.Context, sessionID string, field domain.TradeField, value osmomath.Dec) (domain.TradeSessionResult, error)

	// SetDirection switches buy and sell. The session is reset.
	SetDirection(ctx context.Context, sessionID string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)

	// SetOutcomeAsset switches the traded outcome asset in the same pool. The session is reset.
	SetOutcomeAsset(ctx context.Context, sessionID string, outcomeAsset string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)

	SetBalance(ctx context.Context, sessionID string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)

	// GetSwapBound returns the slippage bounded swap for the session amounts.
	// A nil slippage uses the configured default.
	GetSwapBound(ctx context.Context, sessionID string, slippagePercent osmomath.Dec) (domain.SwapBound, error)

	// Subscribe returns a channel receiving the latest snapshot after every
	// change of the session, and a function to cancel the subscription. The
	// channel is closed when the session is closed.
	Subscribe(ctx context.Context, sessionID string) (<-chan domain.TradeSessionResult, func(), error)

	CloseSession(ctx context.Context, sessionID string) error
}
