package quotation

import (
	"math"

	"hostnhome/models"
	"hostnhome/utils"
)

const resortPlaceholder = "Select Resort"

// DerivedQuote holds the values recomputed from the form on every read.
type DerivedQuote struct {
	Nights      int     `json:"nights"`
	Total       float64 `json:"total"`
	Paid        float64 `json:"paid"`
	Balance     float64 `json:"balance"`
	ResortName  string  `json:"resortName"`
	NightsLabel string  `json:"nightsLabel,omitempty"`
	TotalLabel  string  `json:"totalLabel"`
	DateRange   string  `json:"dateRange"`
}

// Nights counts the nights between two wizard dates, rounding partial days up.
// It returns 0 if either date does not parse and does not clamp negatives.
func Nights(checkIn, checkOut string) int {
	in, okIn := utils.ParseWizardDate(checkIn)
	out, okOut := utils.ParseWizardDate(checkOut)
	if !okIn || !okOut {
		return 0
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// Balance is what remains after paid is deducted from total. Not clamped.
func Balance(total, paid float64) float64 {
	return total - paid
}

// FindResort looks a resort up by id, comparing ids as strings.
func FindResort(resorts []models.Resort, id string) *models.Resort {
	for i := range resorts {
		if resorts[i].ID.Equal(id) {
			return &resorts[i]
		}
	}
	return nil
}

func nightsLabel(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "1 night"
	}
	return utils.FormatCount(n) + " nights"
}

func amountOrZero(raw string) float64 {
	n, ok := utils.ParseNumber(raw)
	if !ok {
		return 0
	}
	return n
}

// Derive computes the quote summary for a form against the known resorts.
func Derive(form QuotationForm, resorts []models.Resort) DerivedQuote {
	total := amountOrZero(form.TotalAmount)
	paid := amountOrZero(form.PaidAmount)
	nights := Nights(form.CheckIn, form.CheckOut)

	name := resortPlaceholder
	if r := FindResort(resorts, form.ResortID); r != nil {
		name = r.Name
	}

	return DerivedQuote{
		Nights:      nights,
		Total:       total,
		Paid:        paid,
		Balance:     Balance(total, paid),
		ResortName:  name,
		NightsLabel: nightsLabel(nights),
		TotalLabel:  utils.FormatCurrency(total),
		DateRange:   utils.FormatDateRange(form.CheckIn, form.CheckOut),
	}
}
