// Package liquidity computes how a base amount seeds the reserves and weights
// of a new multi-outcome market pool.
//
// Every outcome receives baseAmount of its outcome asset. The base asset holds
// totalWeight and outcome i holds price_i * totalWeight, so the fee-less buy
// spot price of outcome i equals price_i.
package liquidity

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/predictmarkets/tqs/domain"
)

// MinOutcomes is the least number of outcomes a market can have.
const MinOutcomes = 2

// priceSumTolerance bounds how far outcome prices may sum away from one.
var priceSumTolerance = osmomath.NewDecWithPrec(1, 10)

// EvenPrices returns n prices of 1/n. The rounding remainder goes to the last
// outcome so that the prices sum to exactly one.
func EvenPrices(n int) ([]osmomath.Dec, error) {
	if n < MinOutcomes {
		return nil, domain.InvalidLiquidityDistributionError{
			Reason: fmt.Sprintf("at least %d outcomes are required, got %d", MinOutcomes, n),
		}
	}

	share := osmomath.OneDec().QuoInt64(int64(n))

	prices := make([]osmomath.Dec, n)
	for i := 0; i < n-1; i++ {
		prices[i] = share
	}
	prices[n-1] = osmomath.OneDec().Sub(share.MulInt64(int64(n - 1)))

	return prices, nil
}

// Distribute returns the initial pool composition for the given outcome prices.
func Distribute(baseAmount osmomath.Dec, prices []osmomath.Dec, totalWeight osmomath.Dec) (domain.LiquidityDistribution, error) {
	if baseAmount.IsNil() || !baseAmount.IsPositive() {
		return domain.LiquidityDistribution{}, domain.InvalidLiquidityDistributionError{Reason: "base amount must be positive"}
	}

	if totalWeight.IsNil() || !totalWeight.IsPositive() {
		return domain.LiquidityDistribution{}, domain.InvalidLiquidityDistributionError{Reason: "total weight must be positive"}
	}

	if err := validatePrices(prices); err != nil {
		return domain.LiquidityDistribution{}, err
	}

	outcomes := make([]domain.OutcomeLiquidity, 0, len(prices))
	for i, price := range prices {
		outcomes = append(outcomes, domain.OutcomeLiquidity{
			Index:  i,
			Price:  price,
			Amount: baseAmount,
			Weight: price.Mul(totalWeight),
		})
	}

	return domain.LiquidityDistribution{
		BaseAmount: baseAmount,
		BaseWeight: totalWeight,
		Outcomes:   outcomes,
	}, nil
}

func validatePrices(prices []osmomath.Dec) error {
	if len(prices) < MinOutcomes {
		return domain.InvalidLiquidityDistributionError{
			Reason: fmt.Sprintf("at least %d outcome prices are required, got %d", MinOutcomes, len(prices)),
		}
	}

	sum := osmomath.ZeroDec()
	for i, price := range prices {
		if price.IsNil() || !price.IsPositive() || price.GTE(osmomath.OneDec()) {
			return domain.InvalidLiquidityDistributionError{
				Reason: fmt.Sprintf("price of outcome %d (%s) must be in (0, 1)", i, price),
			}
		}
		sum = sum.Add(price)
	}

	if sum.Sub(osmomath.OneDec()).Abs().GT(priceSumTolerance) {
		return domain.InvalidLiquidityDistributionError{
			Reason: fmt.Sprintf("outcome prices must sum to 1, got %s", sum),
		}
	}

	return nil
}
