package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies the gateway treats as having no minor unit.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

func exponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[strings.ToLower(currency)]; ok {
		return 0
	}
	return 2
}

// ToMinorUnits converts an amount to integer minor units, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	return amount.Shift(exponent(currency)).Round(0).IntPart()
}

func FromMinorUnits(units int64, currency string) decimal.Decimal {
	return decimal.New(units, -exponent(currency))
}

func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
