package utils

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DateLayout     = "2006-01-02"
	displayLayout  = "Jan 2, 2006"
	shortDayLayout = "Jan 2"
	currencySymbol = "₹"
	rangeSeparator = " - "
)

var wizardDateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var amountPrinter = message.NewPrinter(language.English)

// ParseWizardDate parses the date forms accepted by the quotation forms.
// Zone-less inputs are read as UTC.
func ParseWizardDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range wizardDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date as "Dec 25, 2024". Unparseable input is returned as is.
func FormatDate(s string) string {
	t, ok := ParseWizardDate(s)
	if !ok {
		return s
	}
	return t.Format(displayLayout)
}

// FormatDateRange renders a stay. The year is printed once when both ends share it.
func FormatDateRange(from, to string) string {
	start, okStart := ParseWizardDate(from)
	end, okEnd := ParseWizardDate(to)
	if !okStart || !okEnd {
		return from + rangeSeparator + to
	}
	if start.Year() == end.Year() {
		return start.Format(shortDayLayout) + rangeSeparator + end.Format(displayLayout)
	}
	return start.Format(displayLayout) + rangeSeparator + end.Format(displayLayout)
}

// FormatCurrency renders whole rupees with thousands grouping, e.g. ₹1,234.
// The amount stays a float so totals beyond the int64 range print correctly.
func FormatCurrency(amount float64) string {
	rounded := math.Round(amount)
	if rounded < 0 {
		return "-" + currencySymbol + amountPrinter.Sprintf("%.0f", -rounded)
	}
	return currencySymbol + amountPrinter.Sprintf("%.0f", math.Abs(rounded))
}

// DateOnly formats t as YYYY-MM-DD in its own location.
func DateOnly(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCount renders an integer with thousands grouping.
func FormatCount(n int) string {
	return amountPrinter.Sprintf("%d", n)
}
