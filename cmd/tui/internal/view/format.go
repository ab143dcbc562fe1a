package view

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currency = "ر.س"

var printer = message.NewPrinter(language.Arabic)

// SetLocale switches the printer used for amounts and counts.
func SetLocale(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// FormatAmount renders a riyal amount with grouping and at most two decimals.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%v %s", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)), currency)
}

func FormatCount(n int) string {
	return printer.Sprint(number.Decimal(n))
}

func FormatPercent(n int) string {
	return printer.Sprintf("%v%%", number.Decimal(n))
}
