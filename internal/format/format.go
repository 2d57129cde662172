// Package format renders catalog figures for tables, charts and narrative text.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "€"

// Compact scales v to its largest grouping: "Mrd" from 1e9, "M" from 1e6,
// "k" from 1e3, otherwise the bare integer. Thresholds are inclusive and the
// value is scaled before rounding, so 999999 renders as "1000.0k".
func Compact(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fMrd", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// Percent renders a fraction as a percentage with one decimal: 0.05 -> "5.0%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// Currency rounds to a whole amount followed by the euro sign: 45 -> "45 €".
func Currency(v float64) string {
	return fmt.Sprintf("%.0f %s", v, currencySymbol)
}

// Grouped renders an integer with thousands separators: 1234567 -> "1,234,567".
func Grouped(v int64) string {
	return printer().Sprintf("%d", v)
}

// Euro renders an amount with thousands separators and cents: "1,234.50 €".
func Euro(v float64) string {
	return printer().Sprintf("%.2f %s", v, currencySymbol)
}

// Score renders a performance score with two decimals.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}
