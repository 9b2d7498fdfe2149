// Package converter derives ADA amounts from a USD bill and a conversion rate.
package converter

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ProcessingFee is the flat surcharge in ADA added to every conversion.
const ProcessingFee = 5

// Fetching is displayed while a value has not been loaded yet.
const Fetching = "Fetching..."

var fee = decimal.NewFromInt(ProcessingFee)

// AdaAmount converts a raw USD bill to ADA rounded to 4 decimals.
// It returns "0" when the rate is unset or the bill is empty or not a
// non-negative number.
func AdaAmount(bill string, rate *float64) string {
	r, ok := validRate(rate)
	if !ok {
		return "0"
	}
	b, ok := parseBill(bill)
	if !ok {
		return "0"
	}
	return b.DivRound(r, 4).StringFixed(4)
}

// TotalPayable adds the processing fee to an ADA amount produced by
// AdaAmount and rounds to 2 decimals.
func TotalPayable(adaAmount string) string {
	ada, ok := parseAmount(adaAmount)
	if !ok {
		ada = decimal.Zero
	}
	return ada.Add(fee).StringFixed(2)
}

// UsdToAda renders the ADA value of one US dollar.
func UsdToAda(rate *float64) string {
	r, ok := validRate(rate)
	if !ok {
		return Fetching
	}
	return decimal.NewFromInt(1).DivRound(r, 4).StringFixed(4) + " ADA"
}

// AdaToUsd renders the USD value of one ADA.
func AdaToUsd(rate *float64) string {
	r, ok := validRate(rate)
	if !ok {
		return Fetching
	}
	return r.StringFixed(4) + " $"
}

// Balance renders a fetched balance, or Fetching when it is unset.
func Balance(balance *float64) string {
	if balance == nil {
		return Fetching
	}
	return strconv.FormatFloat(*balance, 'f', -1, 64)
}

func validRate(rate *float64) (decimal.Decimal, bool) {
	if rate == nil || *rate <= 0 || math.IsNaN(*rate) || math.IsInf(*rate, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*rate), true
}

func parseBill(bill string) (decimal.Decimal, bool) {
	b, ok := parseAmount(bill)
	if !ok || b.IsNegative() {
		return decimal.Zero, false
	}
	return b, true
}

// parseAmount reads a plain decimal number. Values are bounded to the
// float64 range so the decimal exponent stays small whatever the input.
func parseAmount(amount string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(amount)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return decimal.Zero, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
