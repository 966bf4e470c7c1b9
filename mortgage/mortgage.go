// Package mortgage models Canadian mortgage payments.
//
// The peculiarity of Canadian mortgages is that the quoted annual rate is
// compounded semi-annually by statute, while payments are computed and
// applied monthly or more frequently. The model converts the quoted rate to
// its monthly-compounding equivalent once at construction, derives the
// monthly payment from the amortization formula, and scales it to the
// requested payment frequency.
package mortgage

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meenmo/mortlib/annuity"
	"github.com/meenmo/mortlib/rates"
)

// Quoted rates compound semi-annually by statute; payment math runs on a
// monthly basis.
const (
	quotedCompounding  = 2
	paymentCompounding = 12
)

// workingPrecision is the number of fractional digits kept by decimal
// divisions in this package.
const workingPrecision = 28

var (
	two       = decimal.NewFromInt(2)
	four      = decimal.NewFromInt(4)
	twelve    = decimal.NewFromInt(12)
	twentySix = decimal.NewFromInt(26)
	fiftyTwo  = decimal.NewFromInt(52)
	hundred   = decimal.NewFromInt(100)
)

// ValidationError reports a constructor argument that violates the model's
// preconditions.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mortgage: invalid %s: %s", e.Field, e.Detail)
}

// CanadianMortgage is one loan. It is immutable once constructed and safe
// for concurrent use; every method is a pure function of its fields.
type CanadianMortgage struct {
	principal decimal.Decimal
	// interestRate is the annual rate as a fraction on the monthly
	// compounding basis, never the quoted semi-annual percentage.
	interestRate      decimal.Decimal
	amortizationYears int
	frequency         PaymentFrequency
}

// New validates the loan parameters and builds the model.
//
// annualRatePercent is the quoted rate as a percentage on the statutory
// semi-annual compounding basis: 6.5 means 6.5% per year. It must lie in
// [0, 100] inclusive. principal must be non-negative and amortizationYears
// positive.
func New(principal, annualRatePercent decimal.Decimal, amortizationYears int, frequency PaymentFrequency) (CanadianMortgage, error) {
	if principal.IsNegative() {
		return CanadianMortgage{}, &ValidationError{
			Field:  "principal",
			Detail: fmt.Sprintf("must be non-negative, got %s", principal),
		}
	}
	if annualRatePercent.IsNegative() || annualRatePercent.GreaterThan(hundred) {
		return CanadianMortgage{}, &ValidationError{
			Field:  "annualRatePercent",
			Detail: fmt.Sprintf("rate %s%% is outside [0%%, 100%%]", annualRatePercent),
		}
	}
	if amortizationYears < 1 {
		return CanadianMortgage{}, &ValidationError{
			Field:  "amortizationYears",
			Detail: fmt.Sprintf("must be positive, got %d", amortizationYears),
		}
	}
	if frequency.PaymentsPerYear() == 0 {
		return CanadianMortgage{}, &ValidationError{
			Field:  "frequency",
			Detail: fmt.Sprintf("unknown payment frequency %d", int(frequency)),
		}
	}

	fraction := annualRatePercent.DivRound(hundred, workingPrecision)
	monthlyBasis, err := rates.ConvertCompoundingBasis(fraction, quotedCompounding, paymentCompounding)
	if err != nil {
		return CanadianMortgage{}, err
	}

	return CanadianMortgage{
		principal:         principal,
		interestRate:      monthlyBasis,
		amortizationYears: amortizationYears,
		frequency:         frequency,
	}, nil
}

// Principal is the amount borrowed.
func (m CanadianMortgage) Principal() decimal.Decimal { return m.principal }

// InterestRate is the annual rate as a fraction on the monthly compounding
// basis, after the one-time conversion from the quoted semi-annual
// percentage.
func (m CanadianMortgage) InterestRate() decimal.Decimal { return m.interestRate }

// AmortizationYears is the repayment span in whole years.
func (m CanadianMortgage) AmortizationYears() int { return m.amortizationYears }

// Frequency is the payment frequency the model was built with.
func (m CanadianMortgage) Frequency() PaymentFrequency { return m.frequency }

// MonthlyPayment is the payment the loan would require on a monthly
// schedule. Payments at every other frequency are scaled from it.
func (m CanadianMortgage) MonthlyPayment() (decimal.Decimal, error) {
	return annuity.Payment(
		m.principal,
		m.interestRate.DivRound(twelve, workingPrecision),
		int64(m.amortizationYears)*12,
	)
}

// Payment is the amount due each payment period at the model's frequency.
//
// With M the monthly payment: SemiMonthly pays M/2 twice a month; BiWeekly
// and Weekly spread the annual total 12M over 26 or 52 payments;
// AcceleratedBiWeekly pays M/2 every two weeks and AcceleratedWeekly M/4
// every week, for an annual total of 13M.
func (m CanadianMortgage) Payment() (decimal.Decimal, error) {
	monthly, err := m.MonthlyPayment()
	if err != nil {
		return decimal.Decimal{}, err
	}

	switch m.frequency {
	case Monthly:
		return monthly, nil
	case SemiMonthly:
		return monthly.DivRound(two, workingPrecision), nil
	case BiWeekly:
		return monthly.Mul(twelve).DivRound(twentySix, workingPrecision), nil
	case AcceleratedBiWeekly:
		return monthly.DivRound(two, workingPrecision), nil
	case Weekly:
		return monthly.Mul(twelve).DivRound(fiftyTwo, workingPrecision), nil
	case AcceleratedWeekly:
		return monthly.DivRound(four, workingPrecision), nil
	default:
		return decimal.Decimal{}, &ValidationError{
			Field:  "frequency",
			Detail: fmt.Sprintf("unknown payment frequency %d", int(m.frequency)),
		}
	}
}

// AnnualTotal is the amount paid per calendar year: Payment times the
// number of payments per year. Accelerated schedules total 13M against the
// monthly schedule's 12M, which is what shortens their effective
// amortization.
func (m CanadianMortgage) AnnualTotal() (decimal.Decimal, error) {
	payment, err := m.Payment()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return payment.Mul(decimal.NewFromInt(m.frequency.PaymentsPerYear())), nil
}
