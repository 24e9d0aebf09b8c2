package usecase

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/amm"
	"github.com/predictmarkets/tqs/domain"
)

var (
	zero       = osmomath.ZeroDec()
	one        = osmomath.OneDec()
	oneHundred = osmomath.NewDec(100)
)

// Session is the reconciliation controller of a single trade session.
//
// It owns the input amount, the output amount and the percent of max input
// and keeps them consistent against its pool state after every edit. Exactly
// one of them is authoritative per recomputation: the field last edited by the
// user. The other two are always derived from it.
//
// Session is not safe for concurrent use.
type Session struct {
	pool      domain.PoolState
	direction domain.TradeDirection
	balanceIn osmomath.Dec
	params    domain.TradeParams

	amounts    domain.TradeAmounts
	lastEdited domain.TradeField
	// lastValue is the raw value of the last user edit, before clamping.
	lastValue osmomath.Dec
	clamped   bool
}

// NewSession starts a session with all amounts zeroed. balanceIn is the
// user's balance of the asset spent in the given direction.
func NewSession(pool domain.PoolState, direction domain.TradeDirection, balanceIn osmomath.Dec, params domain.TradeParams) (*Session, error) {
	if err := amm.ValidatePoolState(pool); err != nil {
		return nil, domain.InvalidPoolError{PoolID: pool.PoolID, Reason: err.Error()}
	}

	if err := validateBalance(balanceIn); err != nil {
		return nil, err
	}

	s := &Session{
		pool:      pool,
		direction: direction,
		balanceIn: balanceIn,
		params:    params,
	}
	s.reset()

	return s, nil
}

// PoolID returns the id of the pool the session prices against.
func (s *Session) PoolID() uint64 {
	return s.pool.PoolID
}

// OutcomeAsset returns the outcome asset traded in the session.
func (s *Session) OutcomeAsset() string {
	return s.pool.OutcomeAsset
}

// Direction returns the current trade direction.
func (s *Session) Direction() domain.TradeDirection {
	return s.direction
}

// ApplyEdit records a user edit of the given field and recomputes the two
// other fields from it. Values outside of the feasible range are clamped
// rather than rejected.
func (s *Session) ApplyEdit(field domain.TradeField, value osmomath.Dec) error {
	if field != domain.FieldInput && field != domain.FieldOutput && field != domain.FieldPercent {
		return domain.InvalidTradeFieldError{Field: field.String()}
	}

	if value.IsNil() {
		return domain.InvalidAmountError{Name: field.String(), Amount: "nil"}
	}

	s.lastEdited = field
	s.lastValue = value
	s.recompute()

	return nil
}

// RefreshPool replaces the pool state and re-runs the last user edit against
// it. A session that has not been edited yet stays zeroed.
func (s *Session) RefreshPool(pool domain.PoolState) error {
	if pool.PoolID != s.pool.PoolID || pool.OutcomeAsset != s.pool.OutcomeAsset {
		return fmt.Errorf("refresh with pool (%d, %s) for session on pool (%d, %s)", pool.PoolID, pool.OutcomeAsset, s.pool.PoolID, s.pool.OutcomeAsset)
	}

	if err := amm.ValidatePoolState(pool); err != nil {
		return domain.InvalidPoolError{PoolID: pool.PoolID, Reason: err.Error()}
	}

	s.pool = pool
	s.recompute()

	return nil
}

// SetBalance updates the user's balance of the asset spent and re-runs the
// last user edit, since the max input may have moved.
func (s *Session) SetBalance(balanceIn osmomath.Dec) error {
	if err := validateBalance(balanceIn); err != nil {
		return err
	}

	s.balanceIn = balanceIn
	s.recompute()

	return nil
}

// SetDirection switches between buying and selling. Amounts are not carried
// over: the session is reset.
func (s *Session) SetDirection(direction domain.TradeDirection, balanceIn osmomath.Dec) error {
	if err := validateBalance(balanceIn); err != nil {
		return err
	}

	s.direction = direction
	s.balanceIn = balanceIn
	s.reset()

	return nil
}

// SetPool switches the traded asset, possibly in another pool. The session
// is reset.
func (s *Session) SetPool(pool domain.PoolState, balanceIn osmomath.Dec) error {
	if err := amm.ValidatePoolState(pool); err != nil {
		return domain.InvalidPoolError{PoolID: pool.PoolID, Reason: err.Error()}
	}

	if err := validateBalance(balanceIn); err != nil {
		return err
	}

	s.pool = pool
	s.balanceIn = balanceIn
	s.reset()

	return nil
}

// MaxInput returns the largest amount that can be spent: the lesser of the
// user's balance and the pool ceiling. Zero if the pool is not seeded.
func (s *Session) MaxInput() osmomath.Dec {
	if !s.pool.IsActive() {
		return zero
	}

	reserveIn, _, _, _ := s.pool.Sides(s.direction)
	poolCeiling := reserveIn.MulTruncate(s.params.MaxInRatio)

	return sdkmath.LegacyMinDec(s.balanceIn, poolCeiling)
}

// MaxOutput returns the reserve of the asset received.
func (s *Session) MaxOutput() osmomath.Dec {
	_, _, reserveOut, _ := s.pool.Sides(s.direction)
	return reserveOut
}

// Snapshot returns the current read model of the session.
func (s *Session) Snapshot() domain.TradeSnapshot {
	maxInput := s.MaxInput()
	disabled := !maxInput.IsPositive()

	snapshot := domain.TradeSnapshot{
		TradeAmounts: s.amounts,
		PoolID:       s.pool.PoolID,
		Direction:    s.direction,
		AssetIn:      s.pool.AssetIn(s.direction),
		AssetOut:     s.pool.AssetOut(s.direction),
		FeeAsset:     s.feeAsset(),
		LastEdited:   s.lastEdited,
		BalanceIn:    s.balanceIn,
		Disabled:     disabled,
		CanSubmit:    !disabled && !s.amounts.IsZero(),
		Clamped:      s.clamped,
		MaxInput:     maxInput,
		MaxOutput:    s.MaxOutput(),
		SpotPrice:    zero,
		SpotAfter:    zero,
		PriceImpact:  zero,
	}

	if !s.pool.IsActive() {
		return snapshot
	}

	spotPrice := mustPrice(amm.SpotPrice(s.pool, s.direction))
	snapshot.SpotPrice = spotPrice
	snapshot.SpotAfter = spotPrice

	if !s.amounts.IsZero() {
		snapshot.SpotAfter = mustPrice(amm.SpotPriceAfter(s.pool, s.direction, s.amounts.InputAmount, s.amounts.OutputAmount))
		snapshot.PriceImpact = amm.PriceImpact(spotPrice, s.amounts.InputAmount, s.amounts.OutputAmount)
	}

	return snapshot
}

// feeAsset is the asset a fee estimate for the trade is quoted in: the asset
// the user is typing an amount of.
func (s *Session) feeAsset() string {
	if s.lastEdited == domain.FieldOutput {
		return s.pool.AssetOut(s.direction)
	}
	return s.pool.AssetIn(s.direction)
}

func (s *Session) reset() {
	s.amounts = domain.ZeroTradeAmounts()
	s.lastEdited = domain.FieldNone
	s.lastValue = zero
	s.clamped = false
}

// recompute derives the amounts from the last user edit.
func (s *Session) recompute() {
	s.clamped = false

	maxInput := s.MaxInput()
	if !maxInput.IsPositive() {
		s.amounts = domain.ZeroTradeAmounts()
		return
	}

	switch s.lastEdited {
	case domain.FieldInput:
		s.fromInput(s.lastValue, maxInput)
	case domain.FieldOutput:
		s.fromOutput(s.lastValue, maxInput)
	case domain.FieldPercent:
		s.fromPercent(s.lastValue, maxInput)
	default:
		s.amounts = domain.ZeroTradeAmounts()
	}
}

func (s *Session) fromInput(value, maxInput osmomath.Dec) {
	amountIn := s.clamp(value, maxInput)
	amountOut := mustPrice(amm.OutGivenIn(s.pool, s.direction, amountIn))

	s.amounts = domain.TradeAmounts{
		InputAmount:  amountIn,
		OutputAmount: amountOut,
		PercentOfMax: percentOf(amountIn, maxInput),
	}
}

func (s *Session) fromPercent(value, maxInput osmomath.Dec) {
	percent := s.clamp(value, oneHundred)
	amountIn := maxInput.Mul(percent).Quo(oneHundred)
	amountOut := mustPrice(amm.OutGivenIn(s.pool, s.direction, amountIn))

	s.amounts = domain.TradeAmounts{
		InputAmount:  amountIn,
		OutputAmount: amountOut,
		PercentOfMax: percent,
	}
}

func (s *Session) fromOutput(value, maxInput osmomath.Dec) {
	amountOut := s.clamp(value, s.maxOutputEdit())
	if amountOut.IsZero() {
		s.amounts = domain.ZeroTradeAmounts()
		return
	}

	amountIn, err := amm.InGivenOut(s.pool, s.direction, amountOut)
	var overflowErr amm.AmountInOverflowError
	if err != nil && !errors.As(err, &overflowErr) {
		panic(fmt.Errorf("trade session priced an infeasible trade: %w", err))
	}

	// The output is affordable by the pool but not by the user.
	if err != nil || amountIn.GT(maxInput) {
		s.clamped = true
		amountIn = maxInput
		amountOut = mustPrice(amm.OutGivenIn(s.pool, s.direction, amountIn))
	}

	s.amounts = domain.TradeAmounts{
		InputAmount:  amountIn,
		OutputAmount: amountOut,
		PercentOfMax: percentOf(amountIn, maxInput),
	}
}

// maxOutputEdit is the largest output an edit is clamped to. It is strictly
// below the out reserve.
func (s *Session) maxOutputEdit() osmomath.Dec {
	reserveOut := s.MaxOutput()
	limit := reserveOut.MulTruncate(s.params.MaxOutRatio)
	if limit.GTE(reserveOut) {
		limit = reserveOut.Sub(sdkmath.LegacySmallestDec())
	}
	return limit
}

// clamp bounds value to [0, upper] and records whether it had to.
func (s *Session) clamp(value, upper osmomath.Dec) osmomath.Dec {
	if value.IsNegative() {
		s.clamped = true
		return zero
	}
	if value.GT(upper) {
		s.clamped = true
		return upper
	}
	return value
}

func percentOf(amount, maxAmount osmomath.Dec) osmomath.Dec {
	if !maxAmount.IsPositive() {
		return zero
	}
	return amount.Mul(oneHundred).Quo(maxAmount)
}

func validateBalance(balance osmomath.Dec) error {
	if balance.IsNil() || balance.IsNegative() {
		amount := "nil"
		if !balance.IsNil() {
			amount = balance.String()
		}
		return domain.InvalidAmountError{Name: "balance", Amount: amount}
	}
	return nil
}

// mustPrice unwraps a pricing engine result. The session clamps every amount
// before pricing it, so an engine error is a defect of the session.
func mustPrice(amount osmomath.Dec, err error) osmomath.Dec {
	if err != nil {
		panic(fmt.Errorf("trade session priced an infeasible trade: %w", err))
	}
	return amount
}
