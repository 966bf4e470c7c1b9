package mortgage

import (
	"fmt"
	"strings"
)

// PaymentFrequency enumerates how often a mortgage payment is made.
//
// The accelerated variants pay half (biweekly) or a quarter (weekly) of the
// monthly payment each period, which raises the annual total and shortens
// the effective amortization. The plain BiWeekly and Weekly variants keep
// the monthly schedule's annual total and spread it over 26 or 52 payments.
type PaymentFrequency int

const (
	Monthly PaymentFrequency = iota
	SemiMonthly
	BiWeekly
	AcceleratedBiWeekly
	Weekly
	AcceleratedWeekly
)

func (f PaymentFrequency) String() string {
	switch f {
	case Monthly:
		return "Monthly"
	case SemiMonthly:
		return "SemiMonthly"
	case BiWeekly:
		return "BiWeekly"
	case AcceleratedBiWeekly:
		return "AcceleratedBiWeekly"
	case Weekly:
		return "Weekly"
	case AcceleratedWeekly:
		return "AcceleratedWeekly"
	default:
		return fmt.Sprintf("PaymentFrequency(%d)", int(f))
	}
}

// PaymentsPerYear is the number of payment events per calendar year.
// Unknown variants return 0.
func (f PaymentFrequency) PaymentsPerYear() int64 {
	switch f {
	case Monthly:
		return 12
	case SemiMonthly:
		return 24
	case BiWeekly, AcceleratedBiWeekly:
		return 26
	case Weekly, AcceleratedWeekly:
		return 52
	default:
		return 0
	}
}

// ParsePaymentFrequency maps a name to its variant. Matching is
// case-insensitive and ignores hyphens, so "accelerated-biweekly" and
// "AcceleratedBiWeekly" both parse.
func ParsePaymentFrequency(s string) (PaymentFrequency, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "monthly":
		return Monthly, nil
	case "semimonthly":
		return SemiMonthly, nil
	case "biweekly":
		return BiWeekly, nil
	case "acceleratedbiweekly":
		return AcceleratedBiWeekly, nil
	case "weekly":
		return Weekly, nil
	case "acceleratedweekly":
		return AcceleratedWeekly, nil
	}
	return 0, &ValidationError{
		Field:  "frequency",
		Detail: fmt.Sprintf("unknown payment frequency %q", s),
	}
}
