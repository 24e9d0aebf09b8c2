package domain

import (
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// TradeDirection fixes which asset is spent and which is received in a trade session.
type TradeDirection int

const (
	// Buy spends the base asset to receive the outcome asset.
	Buy TradeDirection = iota
	// Sell spends the outcome asset to receive the base asset.
	Sell
)

func (d TradeDirection) String() string {
	switch d {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d TradeDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseTradeDirection parses "buy" or "sell" (case-insensitive).
func ParseTradeDirection(s string) (TradeDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return Buy, InvalidTradeDirectionError{Direction: s}
	}
}

// TradeField identifies one of the three mutually derived trade amounts.
type TradeField int

const (
	// FieldNone means no user edit happened yet in the session.
	FieldNone TradeField = iota
	FieldInput
	FieldOutput
	FieldPercent
)

func (f TradeField) String() string {
	switch f {
	case FieldInput:
		return "input"
	case FieldOutput:
		return "output"
	case FieldPercent:
		return "percent"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f TradeField) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseTradeField parses one of "input", "output" or "percent".
func ParseTradeField(s string) (TradeField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "in":
		return FieldInput, nil
	case "output", "out":
		return FieldOutput, nil
	case "percent", "percentage":
		return FieldPercent, nil
	default:
		return FieldNone, InvalidTradeFieldError{Field: s}
	}
}

// TradeAmounts are the three fields kept consistent by a trade session.
type TradeAmounts struct {
	InputAmount  osmomath.Dec `json:"input_amount"`
	OutputAmount osmomath.Dec `json:"output_amount"`
	PercentOfMax osmomath.Dec `json:"percent_of_max"`
}

// ZeroTradeAmounts returns the amounts a fresh session starts with.
func ZeroTradeAmounts() TradeAmounts {
	return TradeAmounts{
		InputAmount:  osmomath.ZeroDec(),
		OutputAmount: osmomath.ZeroDec(),
		PercentOfMax: osmomath.ZeroDec(),
	}
}

// IsZero returns true if no amount is being traded.
func (a TradeAmounts) IsZero() bool {
	return a.InputAmount.IsZero() || a.OutputAmount.IsZero()
}

// TradeSnapshot is the read model of a trade session consumed by the UI layer.
type TradeSnapshot struct {
	TradeAmounts

	PoolID      uint64         `json:"pool_id"`
	Direction   TradeDirection `json:"direction"`
	AssetIn     string         `json:"asset_in"`
	AssetOut    string         `json:"asset_out"`
	FeeAsset    string         `json:"fee_asset"`
	LastEdited  TradeField     `json:"last_edited"`
	BalanceIn   osmomath.Dec   `json:"balance_in"`
	Disabled    bool           `json:"disabled"`
	CanSubmit   bool           `json:"can_submit"`
	Clamped     bool           `json:"clamped"`
	MaxInput    osmomath.Dec   `json:"max_input_amount"`
	MaxOutput   osmomath.Dec   `json:"max_output_amount"`
	SpotPrice   osmomath.Dec   `json:"spot_price"`
	SpotAfter   osmomath.Dec   `json:"spot_price_after"`
	PriceImpact osmomath.Dec   `json:"price_impact"`
}

// SwapBound is handed to the transaction builder. Buy trades are built as
// exact-in swaps bounded by MinAmountOut, Sell trades as exact-out swaps
// bounded by MaxAmountIn. The bound not used by the direction is zero.
type SwapBound struct {
	PoolID          uint64         `json:"pool_id"`
	Direction       TradeDirection `json:"direction"`
	AssetIn         string         `json:"asset_in"`
	AssetOut        string         `json:"asset_out"`
	AmountIn        osmomath.Dec   `json:"amount_in"`
	AmountOut       osmomath.Dec   `json:"amount_out"`
	SlippagePercent osmomath.Dec   `json:"slippage_percent"`
	MinAmountOut    osmomath.Dec   `json:"min_amount_out"`
	MaxAmountIn     osmomath.Dec   `json:"max_amount_in"`
}

// TradeSessionResult couples a session identifier with its current snapshot.
type TradeSessionResult struct {
	SessionID string        `json:"session_id"`
	Snapshot  TradeSnapshot `json:"snapshot"`
}
