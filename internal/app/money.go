package app

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols maps ISO 4217 codes to their display prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "CA$",
	"AUD": "A$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"INR": "₹",
	"RUB": "₽",
	"KZT": "₸",
	"UAH": "₴",
	"TRY": "₺",
	"NGN": "₦",
	"BRL": "R$",
	"CHF": "CHF ",
}

// FormatAmount renders amount with two decimals behind the symbol of currency,
// falling back to fallback when currency is empty. Unknown codes are shown as a prefix.
func FormatAmount(amount decimal.Decimal, currency, fallback string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = strings.ToUpper(strings.TrimSpace(fallback))
	}
	value := amount.StringFixed(2)
	if code == "" {
		return value
	}
	if sym, ok := currencySymbols[code]; ok {
		return sym + value
	}
	return code + " " + value
}
