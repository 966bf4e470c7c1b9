// Package rates converts annual interest rates between compounding bases.
//
// A quoted annual rate only has meaning together with its compounding
// frequency: 6% compounded semi-annually and 6% compounded monthly produce
// different effective yields. Canadian mortgage rates are quoted on a
// semi-annual basis by statute while payments are computed monthly, so the
// quoted rate must be re-expressed before any payment math.
package rates

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// workingPrecision is the number of fractional digits kept by decimal
// divisions in this package.
const workingPrecision = 28

var one = decimal.NewFromInt(1)

// ConversionError reports a numeric conversion that cannot produce a
// representable value: a non-positive compounding frequency, or a
// decimal/float64 conversion yielding NaN or ±Inf.
type ConversionError struct {
	Op     string
	Detail string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// ConvertCompoundingBasis re-expresses an annual rate quoted with `from`
// compounding events per year as the equivalent annual rate with `to`
// compounding events per year, preserving the effective annual yield:
//
//	r2 = ((1 + r1/n1)^(n1/n2) - 1) * n2
//
// The rate is a fraction, not a percentage: 6% is 0.06.
func ConvertCompoundingBasis(rate decimal.Decimal, from, to int64) (decimal.Decimal, error) {
	if from <= 0 {
		return decimal.Decimal{}, &ConversionError{
			Op:     "ConvertCompoundingBasis",
			Detail: fmt.Sprintf("source compounding frequency must be positive, got %d", from),
		}
	}
	if to <= 0 {
		return decimal.Decimal{}, &ConversionError{
			Op:     "ConvertCompoundingBasis",
			Detail: fmt.Sprintf("target compounding frequency must be positive, got %d", to),
		}
	}

	n1 := decimal.NewFromInt(from)
	n2 := decimal.NewFromInt(to)

	base := one.Add(rate.DivRound(n1, workingPrecision))
	exponent := n1.DivRound(n2, workingPrecision)

	grown, err := fractionalPow(base, exponent)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return grown.Sub(one).Mul(n2), nil
}

// EffectiveAnnual returns the annually-compounded equivalent of a rate
// quoted with freq compounding events per year.
func EffectiveAnnual(rate decimal.Decimal, freq int64) (decimal.Decimal, error) {
	return ConvertCompoundingBasis(rate, freq, 1)
}

// fractionalPow raises base to a non-integer exponent. Exact decimal
// exponentiation with a fractional exponent is impractical, so this one
// step drops to float64: both operands are converted down, math.Pow is
// applied, and the result is converted back to decimal. Everything else in
// the library stays in exact decimal arithmetic, which confines the
// float64 precision loss to this single operation.
func fractionalPow(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	b := base.InexactFloat64()
	if !isFinite(b) {
		return decimal.Decimal{}, &ConversionError{
			Op:     "fractionalPow",
			Detail: fmt.Sprintf("base %s is not representable as float64", base),
		}
	}
	e := exponent.InexactFloat64()
	if !isFinite(e) {
		return decimal.Decimal{}, &ConversionError{
			Op:     "fractionalPow",
			Detail: fmt.Sprintf("exponent %s is not representable as float64", exponent),
		}
	}

	p := math.Pow(b, e)
	if !isFinite(p) {
		return decimal.Decimal{}, &ConversionError{
			Op:     "fractionalPow",
			Detail: fmt.Sprintf("%v^%v is not representable as a decimal", b, e),
		}
	}
	return decimal.NewFromFloat(p), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
