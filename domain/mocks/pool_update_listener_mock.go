package mocks

import (
	"context"
	"sync"

	"github.com/predictmarkets/tqs/domain"
)

var _ domain.PoolUpdateListener = &PoolUpdateListenerMock{}

// PoolUpdateListenerMock records every pool it is notified with.
type PoolUpdateListenerMock struct {
	mu    sync.Mutex
	Pools []domain.Pool

	Err error
}

// OnPoolUpdate implements domain.PoolUpdateListener.
func (m *PoolUpdateListenerMock) OnPoolUpdate(ctx context.Context, pool domain.Pool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Pools = append(m.Pools, pool)
	return m.Err
}

// Received returns a copy of the pools received so far.
func (m *PoolUpdateListenerMock) Received() []domain.Pool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.Pool(nil), m.Pools...)
}
