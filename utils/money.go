package utils

import "strconv"

// FormatMoney renders an amount with two decimals behind the currency
// symbol, e.g. ₱1250.50.
func FormatMoney(symbol string, amount float64) string {
	return symbol + strconv.FormatFloat(amount, 'f', 2, 64)
}
