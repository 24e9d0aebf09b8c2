package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
)

var _ mvc.TradeUsecase = &TradeUsecaseMock{}

type TradeUsecaseMock struct {
	CreateSessionFunc   func(ctx context.Context, poolID uint64, outcomeAsset string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)
	GetSnapshotFunc     func(ctx context.Context, sessionID string) (domain.TradeSessionResult, error)
	ApplyEditFunc       func(ctx context.Context, sessionID string, field domain.TradeField, value osmomath.Dec) (domain.TradeSessionResult, error)
	SetDirectionFunc    func(ctx context.Context, sessionID string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)
	SetOutcomeAssetFunc func(ctx context.Context, sessionID string, outcomeAsset string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)
	SetBalanceFunc      func(ctx context.Context, sessionID string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error)
	GetSwapBoundFunc    func(ctx context.Context, sessionID string, slippagePercent osmomath.Dec) (domain.SwapBound, error)
	SubscribeFunc       func(ctx context.Context, sessionID string) (<-chan domain.TradeSessionResult, func(), error)
	CloseSessionFunc    func(ctx context.Context, sessionID string) error
	OnPoolUpdateFunc    func(ctx context.Context, pool domain.Pool) error
}

// CreateSession implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) CreateSession(ctx context.Context, poolID uint64, outcomeAsset string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, poolID, outcomeAsset, direction, balanceIn)
	}
	panic("unimplemented")
}

// GetSnapshot implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) GetSnapshot(ctx context.Context, sessionID string) (domain.TradeSessionResult, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

// ApplyEdit implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) ApplyEdit(ctx context.Context, sessionID string, field domain.TradeField, value osmomath.Dec) (domain.TradeSessionResult, error) {
	if m.ApplyEditFunc != nil {
		return m.ApplyEditFunc(ctx, sessionID, field, value)
	}
	panic("unimplemented")
}

// SetDirection implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) SetDirection(ctx context.Context, sessionID string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	if m.SetDirectionFunc != nil {
		return m.SetDirectionFunc(ctx, sessionID, direction, balanceIn)
	}
	panic("unimplemented")
}

// SetOutcomeAsset implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) SetOutcomeAsset(ctx context.Context, sessionID string, outcomeAsset string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	if m.SetOutcomeAssetFunc != nil {
		return m.SetOutcomeAssetFunc(ctx, sessionID, outcomeAsset, balanceIn)
	}
	panic("unimplemented")
}

// SetBalance implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) SetBalance(ctx context.Context, sessionID string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	if m.SetBalanceFunc != nil {
		return m.SetBalanceFunc(ctx, sessionID, balanceIn)
	}
	panic("unimplemented")
}

// GetSwapBound implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) GetSwapBound(ctx context.Context, sessionID string, slippagePercent osmomath.Dec) (domain.SwapBound, error) {
	if m.GetSwapBoundFunc != nil {
		return m.GetSwapBoundFunc(ctx, sessionID, slippagePercent)
	}
	panic("unimplemented")
}

// Subscribe implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) Subscribe(ctx context.Context, sessionID string) (<-chan domain.TradeSessionResult, func(), error) {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

// CloseSession implements mvc.TradeUsecase.
func (m *TradeUsecaseMock) CloseSession(ctx context.Context, sessionID string) error {
	if m.CloseSessionFunc != nil {
		return m.CloseSessionFunc(ctx, sessionID)
	}
	panic("unimplemented")
}

// OnPoolUpdate implements domain.PoolUpdateListener.
func (m *TradeUsecaseMock) OnPoolUpdate(ctx context.Context, pool domain.Pool) error {
	if m.OnPoolUpdateFunc != nil {
		return m.OnPoolUpdateFunc(ctx, pool)
	}
	panic("unimplemented")
}
