// Package annuity evaluates the fixed-payment amortization formula.
package annuity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// workingPrecision is the number of fractional digits kept by decimal
// divisions in this package.
const workingPrecision = 28

var one = decimal.NewFromInt(1)

// ArithmeticError reports a degenerate or non-representable evaluation of
// the amortization formula.
type ArithmeticError struct {
	Detail string
}

func (e *ArithmeticError) Error() string {
	return "annuity: " + e.Detail
}

// Payment computes the fixed periodic payment that fully amortizes
// principal over the given number of periods at periodicRate interest per
// period:
//
//	a = p * r * (1+r)^n / ((1+r)^n - 1)
//
// periodicRate must already be aligned with periods by the caller: a
// monthly rate pairs with the total number of months, and so on. The
// integer-exponent power (1+r)^n is computed by exact decimal
// multiplication; only the final division rounds, at workingPrecision
// fractional digits.
//
// periodicRate must be non-zero. At a zero rate the denominator vanishes
// and the formula does not apply (an interest-free loan is an even split,
// not an annuity).
func Payment(principal, periodicRate decimal.Decimal, periods int64) (decimal.Decimal, error) {
	if periods < 1 {
		return decimal.Decimal{}, &ArithmeticError{
			Detail: fmt.Sprintf("number of periods must be positive, got %d", periods),
		}
	}

	// Integer exponent: exact repeated multiplication, no float64.
	grown := one.Add(periodicRate).Pow(decimal.NewFromInt(periods))

	denominator := grown.Sub(one)
	if denominator.IsZero() {
		return decimal.Decimal{}, &ArithmeticError{
			Detail: fmt.Sprintf("(1+r)^n - 1 is zero for rate %s over %d periods", periodicRate, periods),
		}
	}

	return principal.Mul(periodicRate).Mul(grown).DivRound(denominator, workingPrecision), nil
}
