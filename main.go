package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/meenmo/mortlib/mortgage"
)

func main() {
	principal := decimal.NewFromInt(430000)
	quotedRate := decimal.RequireFromString("4.59")
	years := 25

	fmt.Printf("$%s at %s%% over %d years\n\n", principal, quotedRate, years)

	for _, freq := range []mortgage.PaymentFrequency{
		mortgage.Monthly,
		mortgage.SemiMonthly,
		mortgage.BiWeekly,
		mortgage.AcceleratedBiWeekly,
		mortgage.Weekly,
		mortgage.AcceleratedWeekly,
	} {
		m, err := mortgage.New(principal, quotedRate, years, freq)
		if err != nil {
			log.Fatalf("building mortgage: %v", err)
		}

		payment, err := m.Payment()
		if err != nil {
			log.Fatalf("computing %s payment: %v", freq, err)
		}
		annual, err := m.AnnualTotal()
		if err != nil {
			log.Fatalf("computing %s annual total: %v", freq, err)
		}

		fmt.Printf("%-20s %10s per payment   %11s per year\n",
			freq, payment.StringFixed(2), annual.StringFixed(2))
	}
}
