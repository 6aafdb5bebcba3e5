// README: Common money value object used across modules. Amounts are whole rupees.
package types

import (
	"math"
	"strconv"
)

const CurrencyINR = "INR"

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func INR(amount int64) Money {
	return Money{Amount: amount, Currency: CurrencyINR}
}

// FormatINR renders an amount the way the site displays it, e.g. "₹1399".
func FormatINR(amount int64) string {
	return "₹" + strconv.FormatInt(amount, 10)
}

// RoundRupees rounds half away from zero, matching how fares are shown.
func RoundRupees(v float64) int64 {
	return int64(math.Round(v))
}
