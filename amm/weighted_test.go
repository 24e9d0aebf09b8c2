package amm_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/osmosis-labs/osmosis/osmoutils/osmoassert"
	"github.com/stretchr/testify/require"

	"github.com/predictmarkets/tqs/amm"
)

var (
	thousand  = osmomath.NewDec(1000)
	half      = osmomath.MustNewDecFromStr("0.5")
	twoPct    = osmomath.MustNewDecFromStr("0.02")
	tenthPct  = osmomath.MustNewDecFromStr("0.001")
	zeroFee   = osmomath.ZeroDec()
	exactTol  = osmomath.MustNewDecFromStr("0.00000001")
)

type weightedPool struct {
	name       string
	balanceIn  osmomath.Dec
	weightIn   osmomath.Dec
	balanceOut osmomath.Dec
	weightOut  osmomath.Dec
	swapFee    osmomath.Dec
}

var weightedPools = []weightedPool{
	{
		name:       "equal weights, 2% fee",
		balanceIn:  thousand,
		weightIn:   half,
		balanceOut: thousand,
		weightOut:  half,
		swapFee:    twoPct,
	},
	{
		name:       "equal weights, no fee",
		balanceIn:  thousand,
		weightIn:   half,
		balanceOut: osmomath.NewDec(250),
		weightOut:  half,
		swapFee:    zeroFee,
	},
	{
		name:       "integer weight ratio",
		balanceIn:  osmomath.NewDec(5000),
		weightIn:   osmomath.MustNewDecFromStr("0.6"),
		balanceOut: osmomath.NewDec(800),
		weightOut:  osmomath.MustNewDecFromStr("0.3"),
		swapFee:    tenthPct,
	},
	{
		name:       "fractional weight ratio",
		balanceIn:  thousand,
		weightIn:   osmomath.MustNewDecFromStr("0.25"),
		balanceOut: osmomath.NewDec(500),
		weightOut:  osmomath.MustNewDecFromStr("0.75"),
		swapFee:    osmomath.MustNewDecFromStr("0.01"),
	},
	{
		name:       "outcome in multi-asset pool",
		balanceIn:  thousand,
		weightIn:   osmomath.MustNewDecFromStr("0.125"),
		balanceOut: osmomath.NewDec(300),
		weightOut:  osmomath.MustNewDecFromStr("0.5"),
		swapFee:    twoPct,
	},
}

func TestCalcSpotPrice(t *testing.T) {
	tests := []struct {
		name       string
		balanceIn  osmomath.Dec
		weightIn   osmomath.Dec
		balanceOut osmomath.Dec
		weightOut  osmomath.Dec
		swapFee    osmomath.Dec

		expected      osmomath.Dec
		expectedError error
	}{
		{
			name:       "balanced pool without fee",
			balanceIn:  thousand,
			weightIn:   half,
			balanceOut: thousand,
			weightOut:  half,
			swapFee:    zeroFee,
			expected:   osmomath.OneDec(),
		},
		{
			name:       "balanced pool with fee",
			balanceIn:  thousand,
			weightIn:   half,
			balanceOut: thousand,
			weightOut:  half,
			swapFee:    twoPct,
			expected:   osmomath.MustNewDecFromStr("1.020408163265306122"),
		},
		{
			name:       "weighted pool",
			balanceIn:  osmomath.NewDec(600),
			weightIn:   osmomath.MustNewDecFromStr("0.2"),
			balanceOut: osmomath.NewDec(300),
			weightOut:  osmomath.MustNewDecFromStr("0.8"),
			swapFee:    zeroFee,
			expected:   osmomath.NewDec(8),
		},
		{
			name:       "empty in reserve prices at zero",
			balanceIn:  osmomath.ZeroDec(),
			weightIn:   half,
			balanceOut: thousand,
			weightOut:  half,
			swapFee:    zeroFee,
			expected:   osmomath.ZeroDec(),
		},
		{
			name:          "empty out reserve",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    osmomath.ZeroDec(),
			weightOut:     half,
			swapFee:       zeroFee,
			expectedError: amm.ZeroBalanceError{Name: "balance out"},
		},
		{
			name:          "zero weight",
			balanceIn:     thousand,
			weightIn:      osmomath.ZeroDec(),
			balanceOut:    thousand,
			weightOut:     half,
			swapFee:       zeroFee,
			expectedError: amm.InvalidWeightError{Name: "weight in", Weight: osmomath.ZeroDec()},
		},
		{
			name:          "fee of one",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			swapFee:       osmomath.OneDec(),
			expectedError: amm.SwapFeeOutOfRangeError{SwapFee: osmomath.OneDec()},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := amm.CalcSpotPrice(tc.balanceIn, tc.weightIn, tc.balanceOut, tc.weightOut, tc.swapFee)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, amm.ErrDomain)
				require.Equal(t, tc.expectedError.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected.String(), actual.String())
		})
	}
}

func TestCalcOutGivenIn(t *testing.T) {
	tests := []struct {
		name       string
		balanceIn  osmomath.Dec
		weightIn   osmomath.Dec
		balanceOut osmomath.Dec
		weightOut  osmomath.Dec
		amountIn   osmomath.Dec
		swapFee    osmomath.Dec

		expected  osmomath.Dec
		tolerance osmomath.Dec
	}{
		{
			// closed form: 1000 * (1 - 1000 / 1098)
			name:       "buy 100 with 2% fee",
			balanceIn:  thousand,
			weightIn:   half,
			balanceOut: thousand,
			weightOut:  half,
			amountIn:   osmomath.NewDec(100),
			swapFee:    twoPct,
			expected:   osmomath.MustNewDecFromStr("89.253187613843351548"),
			tolerance:  osmomath.MustNewDecFromStr("0.000000000001"),
		},
		{
			// closed form: 1000 * (1 - 1000 / 1099.9) ~ 90.83
			name:       "buy 100 with 0.1% fee",
			balanceIn:  thousand,
			weightIn:   half,
			balanceOut: thousand,
			weightOut:  half,
			amountIn:   osmomath.NewDec(100),
			swapFee:    tenthPct,
			expected:   osmomath.MustNewDecFromStr("90.826438767160650968"),
			tolerance:  osmomath.MustNewDecFromStr("0.000000000001"),
		},
		{
			// closed form: 500 * (1 - (1000 / 1099) ^ (1/3))
			name:       "fractional weight ratio",
			balanceIn:  thousand,
			weightIn:   osmomath.MustNewDecFromStr("0.25"),
			balanceOut: osmomath.NewDec(500),
			weightOut:  osmomath.MustNewDecFromStr("0.75"),
			amountIn:   osmomath.NewDec(100),
			swapFee:    osmomath.MustNewDecFromStr("0.01"),
			expected:   osmomath.MustNewDecFromStr("15.488480737864230697"),
			tolerance:  exactTol,
		},
		{
			name:       "zero in",
			balanceIn:  thousand,
			weightIn:   half,
			balanceOut: thousand,
			weightOut:  half,
			amountIn:   osmomath.ZeroDec(),
			swapFee:    twoPct,
			expected:   osmomath.ZeroDec(),
			tolerance:  osmomath.ZeroDec(),
		},
		{
			name:       "empty out reserve",
			balanceIn:  thousand,
			weightIn:   half,
			balanceOut: osmomath.ZeroDec(),
			weightOut:  half,
			amountIn:   osmomath.NewDec(100),
			swapFee:    twoPct,
			expected:   osmomath.ZeroDec(),
			tolerance:  osmomath.ZeroDec(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := amm.CalcOutGivenIn(tc.balanceIn, tc.weightIn, tc.balanceOut, tc.weightOut, tc.amountIn, tc.swapFee)
			require.NoError(t, err)
			osmoassert.DecApproxEq(t, tc.expected, actual, tc.tolerance)
		})
	}
}

func TestCalcInGivenOut(t *testing.T) {
	tests := []struct {
		name      string
		amountOut osmomath.Dec
		swapFee   osmomath.Dec

		expected  osmomath.Dec
		tolerance osmomath.Dec
	}{
		{
			// 1000 * (1000 / 909.17 - 1) / 0.999
			name:      "recovers 100 from 90.83 with 0.1% fee",
			amountOut: osmomath.MustNewDecFromStr("90.83"),
			swapFee:   tenthPct,
			expected:  osmomath.MustNewDecFromStr("100.004312637813523236"),
			tolerance: osmomath.MustNewDecFromStr("0.000000000001"),
		},
		{
			name:      "exact out with 2% fee",
			amountOut: osmomath.MustNewDecFromStr("90.83"),
			swapFee:   twoPct,
			expected:  osmomath.MustNewDecFromStr("101.943171760383377258"),
			tolerance: osmomath.MustNewDecFromStr("0.000000000001"),
		},
		{
			name:      "zero out",
			amountOut: osmomath.ZeroDec(),
			swapFee:   twoPct,
			expected:  osmomath.ZeroDec(),
			tolerance: osmomath.ZeroDec(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := amm.CalcInGivenOut(thousand, half, thousand, half, tc.amountOut, tc.swapFee)
			require.NoError(t, err)
			osmoassert.DecApproxEq(t, tc.expected, actual, tc.tolerance)
		})
	}
}

func TestCalcInGivenOut_Errors(t *testing.T) {
	tests := []struct {
		name       string
		balanceIn  osmomath.Dec
		weightIn   osmomath.Dec
		balanceOut osmomath.Dec
		weightOut  osmomath.Dec
		amountOut  osmomath.Dec
		swapFee    osmomath.Dec

		expectedError error
	}{
		{
			name:          "amount out equals reserve",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			amountOut:     thousand,
			swapFee:       twoPct,
			expectedError: amm.AmountOutExceedsBalanceError{AmountOut: thousand, BalanceOut: thousand},
		},
		{
			name:          "amount out above reserve",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			amountOut:     osmomath.NewDec(1001),
			swapFee:       twoPct,
			expectedError: amm.AmountOutExceedsBalanceError{AmountOut: osmomath.NewDec(1001), BalanceOut: thousand},
		},
		{
			name:          "negative amount out",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			amountOut:     osmomath.NewDec(-1),
			swapFee:       twoPct,
			expectedError: amm.NegativeAmountError{Name: "amount out", Amount: osmomath.NewDec(-1)},
		},
		{
			name:          "negative balance",
			balanceIn:     osmomath.NewDec(-5),
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			amountOut:     osmomath.OneDec(),
			swapFee:       twoPct,
			expectedError: amm.NegativeBalanceError{Name: "balance in", Balance: osmomath.NewDec(-5)},
		},
		{
			name:          "negative weight",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     osmomath.NewDec(-1),
			amountOut:     osmomath.OneDec(),
			swapFee:       twoPct,
			expectedError: amm.InvalidWeightError{Name: "weight out", Weight: osmomath.NewDec(-1)},
		},
		{
			name:          "negative fee",
			balanceIn:     thousand,
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			amountOut:     osmomath.OneDec(),
			swapFee:       osmomath.MustNewDecFromStr("-0.01"),
			expectedError: amm.SwapFeeOutOfRangeError{SwapFee: osmomath.MustNewDecFromStr("-0.01")},
		},
		{
			name:          "empty in reserve",
			balanceIn:     osmomath.ZeroDec(),
			weightIn:      half,
			balanceOut:    thousand,
			weightOut:     half,
			amountOut:     osmomath.OneDec(),
			swapFee:       twoPct,
			expectedError: amm.ZeroBalanceError{Name: "balance in"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := amm.CalcInGivenOut(tc.balanceIn, tc.weightIn, tc.balanceOut, tc.weightOut, tc.amountOut, tc.swapFee)
			require.Error(t, err)
			require.True(t, errors.Is(err, amm.ErrDomain))
			require.Equal(t, tc.expectedError.Error(), err.Error())
		})
	}
}

// Out given in followed by in given out must return the original amount in.
func TestInverseProperty(t *testing.T) {
	amountsIn := []string{"0.000001", "1", "10", "99.5", "100", "250", "333"}

	for _, pool := range weightedPools {
		for _, amountInStr := range amountsIn {
			t.Run(fmt.Sprintf("%s/%s", pool.name, amountInStr), func(t *testing.T) {
				amountIn := osmomath.MustNewDecFromStr(amountInStr)

				amountOut, err := amm.CalcOutGivenIn(pool.balanceIn, pool.weightIn, pool.balanceOut, pool.weightOut, amountIn, pool.swapFee)
				require.NoError(t, err)
				require.True(t, amountOut.LT(pool.balanceOut))

				recovered, err := amm.CalcInGivenOut(pool.balanceIn, pool.weightIn, pool.balanceOut, pool.weightOut, amountOut, pool.swapFee)
				require.NoError(t, err)

				osmoassert.DecApproxEq(t, amountIn, recovered, exactTol)
			})
		}
	}
}

func TestMonotonicity(t *testing.T) {
	amounts := []osmomath.Dec{
		osmomath.OneDec(),
		osmomath.NewDec(10),
		osmomath.NewDec(50),
		osmomath.NewDec(100),
		osmomath.NewDec(150),
		osmomath.NewDec(200),
	}

	for _, pool := range weightedPools {
		t.Run(pool.name, func(t *testing.T) {
			previousOut := osmomath.ZeroDec()
			previousIn := osmomath.ZeroDec()

			for _, amount := range amounts {
				out, err := amm.CalcOutGivenIn(pool.balanceIn, pool.weightIn, pool.balanceOut, pool.weightOut, amount, pool.swapFee)
				require.NoError(t, err)
				require.True(t, out.GT(previousOut), "out given in not increasing at %s: %s <= %s", amount, out, previousOut)
				previousOut = out

				// Amounts out are kept well below the smallest reserve.
				in, err := amm.CalcInGivenOut(pool.balanceIn, pool.weightIn, pool.balanceOut, pool.weightOut, amount, pool.swapFee)
				require.NoError(t, err)
				require.True(t, in.GT(previousIn), "in given out not increasing at %s: %s <= %s", amount, in, previousIn)
				previousIn = in
			}
		})
	}
}

func TestZeroInputIdentity(t *testing.T) {
	for _, pool := range weightedPools {
		t.Run(pool.name, func(t *testing.T) {
			out, err := amm.CalcOutGivenIn(pool.balanceIn, pool.weightIn, pool.balanceOut, pool.weightOut, osmomath.ZeroDec(), pool.swapFee)
			require.NoError(t, err)
			require.True(t, out.IsZero())

			in, err := amm.CalcInGivenOut(pool.balanceIn, pool.weightIn, pool.balanceOut, pool.weightOut, osmomath.ZeroDec(), pool.swapFee)
			require.NoError(t, err)
			require.True(t, in.IsZero())
		})
	}
}

// The out reserve can never be drained by a single trade, regardless of size.
func TestBoundedOutput(t *testing.T) {
	tests := []struct {
		name      string
		weightIn  osmomath.Dec
		weightOut osmomath.Dec
		amountsIn []string
	}{
		{
			name:      "unit weight ratio",
			weightIn:  half,
			weightOut: half,
			amountsIn: []string{"1000", "1000000", "1000000000000", "1000000000000000000000000000000"},
		},
		{
			name:      "integer weight ratio",
			weightIn:  half,
			weightOut: osmomath.MustNewDecFromStr("0.25"),
			amountsIn: []string{"1000", "1000000", "1000000000000", "1000000000000000000000000000000"},
		},
		{
			name:      "fractional weight ratio",
			weightIn:  osmomath.MustNewDecFromStr("0.3"),
			weightOut: osmomath.MustNewDecFromStr("0.7"),
			amountsIn: []string{"10", "500", "1000", "1000000000000", "1000000000000000000000000000000"},
		},
		{
			name:      "large weight ratio",
			weightIn:  osmomath.MustNewDecFromStr("0.99"),
			weightOut: osmomath.MustNewDecFromStr("0.01"),
			amountsIn: []string{"1", "1000", "1000000000000"},
		},
		{
			name:      "large fractional weight ratio",
			weightIn:  osmomath.MustNewDecFromStr("0.97"),
			weightOut: osmomath.MustNewDecFromStr("0.03"),
			amountsIn: []string{"1", "1000", "1000000000000", "1000000000000000000000000000000"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, amountInStr := range tc.amountsIn {
				out, err := amm.CalcOutGivenIn(thousand, tc.weightIn, thousand, tc.weightOut, osmomath.MustNewDecFromStr(amountInStr), zeroFee)
				require.NoError(t, err)
				require.True(t, out.LT(thousand), "amount in %s drained the pool: %s", amountInStr, out)
				require.True(t, out.IsPositive())
			}
		})
	}
}

// Buying almost the whole reserve is priced, or reported as too large to pay
// for, but never fails outside the domain errors.
func TestCalcInGivenOut_NearReserve(t *testing.T) {
	tests := []struct {
		name      string
		weightIn  osmomath.Dec
		weightOut osmomath.Dec
		amountOut osmomath.Dec

		expectedOverflow bool
	}{
		{
			name:      "fractional weight ratio",
			weightIn:  osmomath.MustNewDecFromStr("0.3"),
			weightOut: osmomath.MustNewDecFromStr("0.7"),
			amountOut: osmomath.MustNewDecFromStr("999.999999"),
		},
		{
			name:      "unit weight ratio",
			weightIn:  half,
			weightOut: half,
			amountOut: osmomath.MustNewDecFromStr("999.999999999"),
		},
		{
			name:             "last unit of the reserve",
			weightIn:         osmomath.MustNewDecFromStr("0.3"),
			weightOut:        osmomath.MustNewDecFromStr("0.7"),
			amountOut:        osmomath.MustNewDecFromStr("999.999999999999999999"),
			expectedOverflow: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amountIn, err := amm.CalcInGivenOut(thousand, tc.weightIn, thousand, tc.weightOut, tc.amountOut, zeroFee)
			if tc.expectedOverflow {
				require.ErrorIs(t, err, amm.ErrDomain)
				require.ErrorAs(t, err, &amm.AmountInOverflowError{})
				return
			}

			require.NoError(t, err)
			require.True(t, amountIn.GT(thousand), "amount in %s", amountIn)

			// Spending the quoted amount buys back at least the requested output.
			out, err := amm.CalcOutGivenIn(thousand, tc.weightIn, thousand, tc.weightOut, amountIn, zeroFee)
			require.NoError(t, err)
			osmoassert.DecApproxEq(t, tc.amountOut, out, exactTol)
		})
	}
}

func TestCalcOutGivenIn_FractionalPowerPrecision(t *testing.T) {
	// closed form: 1000 * (1 - (1 / 2) ^ (3 / 7))
	out, err := amm.CalcOutGivenIn(thousand, osmomath.MustNewDecFromStr("0.3"), thousand, osmomath.MustNewDecFromStr("0.7"), thousand, zeroFee)
	require.NoError(t, err)
	osmoassert.DecApproxEq(t, osmomath.MustNewDecFromStr("257.002855431525787600"), out, osmomath.MustNewDecFromStr("0.000000000001"))
}
