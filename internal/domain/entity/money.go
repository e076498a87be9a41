package entity

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
)

// MoneyDecimalPlaces is the number of fraction digits used for USD amounts
const MoneyDecimalPlaces = 2

// FormatUSD renders an amount as US dollars with grouped thousands and
// exactly two fraction digits, e.g. 1234.5 becomes "$1,234.50".
// Negative amounts render with a leading minus sign ("-$5.00").
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(MoneyDecimalPlaces)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	fraction := rounded.Sub(whole).StringFixed(MoneyDecimalPlaces) // "0.50"

	return sign + "$" + humanize.BigComma(whole.BigInt()) + fraction[1:]
}

// ParseAmount parses user-entered text as a positive decimal amount in
// plain notation with at most two fraction digits. Surrounding
// whitespace is ignored. No upper bound is enforced.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil || strings.ContainsAny(text, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, text)
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	if !amount.Equal(amount.Round(MoneyDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: amount has more than %d decimal places", errs.ErrInvalidAmount, MoneyDecimalPlaces)
	}

	return amount, nil
}
