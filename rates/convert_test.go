package rates_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/mortlib/rates"
)

// assertWithin compares decimals under a tolerance. The fractional-exponent
// step runs through float64, so converted rates are reproducible only to
// float64 precision, not digit-for-digit.
func assertWithin(t *testing.T, want, got decimal.Decimal, tolerance string) {
	t.Helper()
	tol := decimal.RequireFromString(tolerance)
	assert.True(t, got.Sub(want).Abs().LessThanOrEqual(tol),
		"got %s, want %s within %s", got, want, tolerance)
}

func TestConvertCompoundingBasis_SemiAnnualToAnnual(t *testing.T) {
	t.Parallel()

	// The canonical Canadian quote: 6% compounded semi-annually is an
	// effective 6.09% per year.
	got, err := rates.ConvertCompoundingBasis(decimal.RequireFromString("0.06"), 2, 1)
	require.NoError(t, err)
	assertWithin(t, decimal.RequireFromString("0.0609"), got, "1e-13")
}

func TestConvertCompoundingBasis_SemiAnnualToMonthly(t *testing.T) {
	t.Parallel()

	got, err := rates.ConvertCompoundingBasis(decimal.RequireFromString("0.06"), 2, 12)
	require.NoError(t, err)
	assertWithin(t, decimal.RequireFromString("0.059263464374364"), got, "1e-13")
}

func TestConvertCompoundingBasis_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, rate := range []string{"0.01", "0.035", "0.06", "0.1249", "0.18"} {
		r := decimal.RequireFromString(rate)

		monthly, err := rates.ConvertCompoundingBasis(r, 2, 12)
		require.NoError(t, err)
		back, err := rates.ConvertCompoundingBasis(monthly, 12, 2)
		require.NoError(t, err)

		assertWithin(t, r, back, "1e-12")
	}
}

func TestConvertCompoundingBasis_SameFrequency(t *testing.T) {
	t.Parallel()

	r := decimal.RequireFromString("0.0725")
	got, err := rates.ConvertCompoundingBasis(r, 12, 12)
	require.NoError(t, err)
	assertWithin(t, r, got, "1e-12")
}

func TestConvertCompoundingBasis_InvalidFrequency(t *testing.T) {
	t.Parallel()

	r := decimal.RequireFromString("0.06")

	_, err := rates.ConvertCompoundingBasis(r, 0, 12)
	var convErr *rates.ConversionError
	require.ErrorAs(t, err, &convErr)

	_, err = rates.ConvertCompoundingBasis(r, 2, -3)
	require.ErrorAs(t, err, &convErr)
}

func TestConvertCompoundingBasis_NotRepresentable(t *testing.T) {
	t.Parallel()

	var convErr *rates.ConversionError

	// 10^400 overflows float64 on the way into the power function.
	_, err := rates.ConvertCompoundingBasis(decimal.New(1, 400), 2, 12)
	require.ErrorAs(t, err, &convErr)

	// A moderate base raised to a large exponent overflows on the way
	// back out.
	_, err = rates.ConvertCompoundingBasis(decimal.RequireFromString("10000"), 1000, 1)
	require.ErrorAs(t, err, &convErr)
}

func TestEffectiveAnnual(t *testing.T) {
	t.Parallel()

	got, err := rates.EffectiveAnnual(decimal.RequireFromString("0.06"), 2)
	require.NoError(t, err)
	assertWithin(t, decimal.RequireFromString("0.0609"), got, "1e-13")

	var convErr *rates.ConversionError
	_, err = rates.EffectiveAnnual(decimal.RequireFromString("0.06"), 0)
	require.ErrorAs(t, err, &convErr)
}
