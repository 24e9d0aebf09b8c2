package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/domain/workerpool"
	"github.com/predictmarkets/tqs/log"
)

type tradeUseCase struct {
	sessions     *lru.Cache[string, *sessionEntry]
	poolsUsecase mvc.PoolsUsecase
	params       domain.TradeParams
	dispatcher   *workerpool.Dispatcher[string]

	logger log.Logger
}

// sessionEntry guards one session. No lock spans more than one session.
type sessionEntry struct {
	mu sync.Mutex

	id      string
	poolID  uint64
	session *Session
	closed  bool

	subscribers      map[int]chan domain.TradeSessionResult
	nextSubscriberID int
}

var (
	_ mvc.TradeUsecase          = &tradeUseCase{}
	_ domain.PoolUpdateListener = &tradeUseCase{}
)

// NewTradeUsecase will create a new trade use case object
func NewTradeUsecase(tradeConfig *domain.TradeConfig, poolsUsecase mvc.PoolsUsecase, logger log.Logger) (mvc.TradeUsecase, error) {
	params, err := tradeConfig.Params()
	if err != nil {
		return nil, err
	}

	sessions, err := lru.NewWithEvict(tradeConfig.MaxSessions, func(id string, entry *sessionEntry) {
		entry.close()
		domain.TradeSessionsOpenGauge.Dec()
	})
	if err != nil {
		return nil, err
	}

	dispatcher := workerpool.NewDispatcher[string](tradeConfig.RefreshWorkers)
	dispatcher.Run()

	return &tradeUseCase{
		sessions:     sessions,
		poolsUsecase: poolsUsecase,
		params:       params,
		dispatcher:   dispatcher,

		logger: logger,
	}, nil
}

// CreateSession implements mvc.TradeUsecase.
func (t *tradeUseCase) CreateSession(ctx context.Context, poolID uint64, outcomeAsset string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	poolState, err := t.poolsUsecase.GetPoolState(ctx, poolID, outcomeAsset)
	if err != nil {
		return domain.TradeSessionResult{}, err
	}

	session, err := NewSession(poolState, direction, balanceIn, t.params)
	if err != nil {
		return domain.TradeSessionResult{}, err
	}

	entry := &sessionEntry{
		id:          uuid.NewString(),
		poolID:      poolID,
		session:     session,
		subscribers: make(map[int]chan domain.TradeSessionResult),
	}

	// Pool updates may refresh the session as soon as it is added.
	result := entry.result()

	t.sessions.Add(entry.id, entry)
	domain.TradeSessionsOpenGauge.Inc()

	t.logger.Debug("trade session created", zap.String("session_id", entry.id), zap.Uint64("pool_id", poolID), zap.String("outcome", outcomeAsset), zap.Stringer("direction", direction))

	return result, nil
}

// GetSnapshot implements mvc.TradeUsecase.
func (t *tradeUseCase) GetSnapshot(ctx context.Context, sessionID string) (domain.TradeSessionResult, error) {
	entry, err := t.getEntry(sessionID)
	if err != nil {
		return domain.TradeSessionResult{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.closed {
		return domain.TradeSessionResult{}, domain.SessionNotFoundError{SessionID: sessionID}
	}

	return entry.result(), nil
}

// ApplyEdit implements mvc.TradeUsecase.
func (t *tradeUseCase) ApplyEdit(ctx context.Context, sessionID string, field domain.TradeField, value osmomath.Dec) (domain.TradeSessionResult, error) {
	result, err := t.updateSession(sessionID, func(session *Session) error {
		return session.ApplyEdit(field, value)
	})
	if err != nil {
		return domain.TradeSessionResult{}, err
	}

	domain.TradeSessionEditsCounter.WithLabelValues(field.String(), result.Snapshot.Direction.String()).Inc()
	if result.Snapshot.Clamped {
		domain.TradeSessionClampedEditsCounter.WithLabelValues(field.String()).Inc()
	}

	return result, nil
}

// SetDirection implements mvc.TradeUsecase.
func (t *tradeUseCase) SetDirection(ctx context.Context, sessionID string, direction domain.TradeDirection, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	return t.updateSession(sessionID, func(session *Session) error {
		return session.SetDirection(direction, balanceIn)
	})
}

// SetOutcomeAsset implements mvc.TradeUsecase.
func (t *tradeUseCase) SetOutcomeAsset(ctx context.Context, sessionID string, outcomeAsset string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	return t.updateSession(sessionID, func(session *Session) error {
		poolState, err := t.poolsUsecase.GetPoolState(ctx, session.PoolID(), outcomeAsset)
		if err != nil {
			return err
		}

		return session.SetPool(poolState, balanceIn)
	})
}

// SetBalance implements mvc.TradeUsecase.
func (t *tradeUseCase) SetBalance(ctx context.Context, sessionID string, balanceIn osmomath.Dec) (domain.TradeSessionResult, error) {
	return t.updateSession(sessionID, func(session *Session) error {
		return session.SetBalance(balanceIn)
	})
}

// GetSwapBound implements mvc.TradeUsecase.
func (t *tradeUseCase) GetSwapBound(ctx context.Context, sessionID string, slippagePercent osmomath.Dec) (domain.SwapBound, error) {
	if slippagePercent.IsNil() {
		slippagePercent = t.params.DefaultSlippagePercent
	}

	entry, err := t.getEntry(sessionID)
	if err != nil {
		return domain.SwapBound{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.closed {
		return domain.SwapBound{}, domain.SessionNotFoundError{SessionID: sessionID}
	}

	bound, err := entry.session.SwapBound(slippagePercent)
	if err != nil {
		var emptyTradeErr domain.EmptyTradeError
		if errors.As(err, &emptyTradeErr) {
			return domain.SwapBound{}, domain.EmptyTradeError{SessionID: sessionID}
		}
		return domain.SwapBound{}, err
	}

	return bound, nil
}

// Subscribe implements mvc.TradeUsecase.
func (t *tradeUseCase) Subscribe(ctx context.Context, sessionID string) (<-chan domain.TradeSessionResult, func(), error) {
	entry, err := t.getEntry(sessionID)
	if err != nil {
		return nil, nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.closed {
		return nil, nil, domain.SessionNotFoundError{SessionID: sessionID}
	}

	subscriberID := entry.nextSubscriberID
	entry.nextSubscriberID++

	updates := make(chan domain.TradeSessionResult, 1)
	updates <- entry.result()
	entry.subscribers[subscriberID] = updates

	unsubscribe := func() {
		entry.mu.Lock()
		defer entry.mu.Unlock()

		if ch, ok := entry.subscribers[subscriberID]; ok {
			delete(entry.subscribers, subscriberID)
			close(ch)
		}
	}

	return updates, unsubscribe, nil
}

// CloseSession implements mvc.TradeUsecase.
func (t *tradeUseCase) CloseSession(ctx context.Context, sessionID string) error {
	// The eviction callback closes the entry.
	if present := t.sessions.Remove(sessionID); !present {
		return domain.SessionNotFoundError{SessionID: sessionID}
	}

	t.logger.Debug("trade session closed", zap.String("session_id", sessionID))

	return nil
}

// OnPoolUpdate implements domain.PoolUpdateListener.
// Every session bound to the pool re-runs its last edit against the new pool
// state. Sessions are refreshed concurrently by the worker pool.
// The refresh outlives ctx: the pool is already stored once this is called.
func (t *tradeUseCase) OnPoolUpdate(ctx context.Context, pool domain.Pool) error {
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	defer func() {
		domain.PoolRefreshDurationHistogram.Observe(time.Since(start).Seconds())
	}()

	tasks := make([]func() (string, error), 0)
	for _, sessionID := range t.sessions.Keys() {
		// Peek does not mark the session as recently used.
		entry, ok := t.sessions.Peek(sessionID)
		if !ok || entry.poolID != pool.ID {
			continue
		}

		tasks = append(tasks, func() (string, error) {
			return entry.id, entry.refresh(pool)
		})
	}

	if len(tasks) == 0 {
		return nil
	}

	results, err := t.dispatcher.Execute(ctx, tasks)
	for _, result := range results {
		if result.Err != nil {
			t.logger.Error("failed to refresh trade session", zap.String("session_id", result.Result), zap.Uint64("pool_id", pool.ID), zap.Error(result.Err))
		}
	}

	return err
}

func (t *tradeUseCase) getEntry(sessionID string) (*sessionEntry, error) {
	entry, ok := t.sessions.Get(sessionID)
	if !ok {
		return nil, domain.SessionNotFoundError{SessionID: sessionID}
	}
	return entry, nil
}

// updateSession applies update to the session under its lock and publishes the
// resulting snapshot to subscribers.
func (t *tradeUseCase) updateSession(sessionID string, update func(session *Session) error) (domain.TradeSessionResult, error) {
	entry, err := t.getEntry(sessionID)
	if err != nil {
		return domain.TradeSessionResult{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.closed {
		return domain.TradeSessionResult{}, domain.SessionNotFoundError{SessionID: sessionID}
	}

	if err := update(entry.session); err != nil {
		return domain.TradeSessionResult{}, err
	}

	result := entry.result()
	entry.publish(result)

	return result, nil
}

func (e *sessionEntry) refresh(pool domain.Pool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	poolState, err := pool.PairState(e.session.OutcomeAsset())
	if err != nil {
		return err
	}

	if err := e.session.RefreshPool(poolState); err != nil {
		return err
	}

	e.publish(e.result())

	return nil
}

// CONTRACT: e.mu is held.
func (e *sessionEntry) result() domain.TradeSessionResult {
	return domain.TradeSessionResult{
		SessionID: e.id,
		Snapshot:  e.session.Snapshot(),
	}
}

// publish replaces any unread snapshot of every subscriber with result.
// CONTRACT: e.mu is held.
func (e *sessionEntry) publish(result domain.TradeSessionResult) {
	for _, updates := range e.subscribers {
		select {
		case <-updates:
		default:
		}
		updates <- result
	}
}

func (e *sessionEntry) close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	for id, updates := range e.subscribers {
		delete(e.subscribers, id)
		close(updates)
	}
}
