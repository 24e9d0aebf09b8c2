package domain

import (
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"
)

var oneHundred = osmomath.NewDec(100)

// ParseNumbers parses a comma-separated list of numbers into a slice of unit64.
func ParseNumbers(numbersParam string) ([]uint64, error) {
	var numbers []uint64
	numStrings := splitAndTrim(numbersParam, ",")

	for _, numStr := range numStrings {
		num, err := strconv.ParseUint(numStr, 10, 64)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, num)
	}

	return numbers, nil
}

// ParseDecimals parses a comma-separated list of decimals.
func ParseDecimals(name, decimalsParam string) ([]osmomath.Dec, error) {
	var decimals []osmomath.Dec
	for _, decStr := range splitAndTrim(decimalsParam, ",") {
		dec, err := ParseDec(name, decStr)
		if err != nil {
			return nil, err
		}
		decimals = append(decimals, dec)
	}

	return decimals, nil
}

// ParseDec parses a non-negative decimal. name is used for error reporting.
func ParseDec(name, value string) (osmomath.Dec, error) {
	dec, err := sdkmath.LegacyNewDecFromStr(strings.TrimSpace(value))
	if err != nil || dec.IsNegative() {
		return osmomath.Dec{}, InvalidAmountError{Name: name, Amount: value}
	}

	return dec, nil
}

// ParseSlippagePercent parses a slippage tolerance in percent, must be in [0, 100).
func ParseSlippagePercent(value string) (osmomath.Dec, error) {
	slippage, err := sdkmath.LegacyNewDecFromStr(strings.TrimSpace(value))
	if err != nil || slippage.IsNegative() || slippage.GTE(oneHundred) {
		return osmomath.Dec{}, InvalidSlippageError{Slippage: value}
	}

	return slippage, nil
}

// ParseDecQueryParam parses a required non-negative decimal query parameter.
func ParseDecQueryParam(c echo.Context, paramName string) (osmomath.Dec, error) {
	return ParseDec(paramName, c.QueryParam(paramName))
}

// ValidateInputDenoms returns nil of two assets are valid, otherwise an error.
// For example, the asset in must not equal the asset out for quotes.
func ValidateInputDenoms(denomA, denomB string) error {
	if denomA == denomB {
		return SameDenomError{
			DenomA: denomA,
			DenomB: denomB,
		}
	}

	return nil
}

// splitAndTrim splits a string by a separator and trims the resulting strings.
func splitAndTrim(s, sep string) []string {
	var result []string
	for _, val := range strings.Split(s, sep) {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
