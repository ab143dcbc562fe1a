package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

var digits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", "٬", "", ",", "", " ", "",
	"ر.س", "", "SAR", "",
)

// parseAmount reads amounts written with Western or Arabic-Indic digits,
// comma or Arabic thousands separators and an optional currency suffix.
// Examples: "1,250.50", "-٧٥٠٠", "٤٬٥٠٠٫٢٥ ر.س".
func parseAmount(s string) (decimal.Decimal, error) {
	clean := digits.Replace(strings.TrimSpace(s))

	neg := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = strings.Trim(clean, "()")
		neg = true
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	if neg {
		d = d.Neg()
	}

	return d, nil
}
