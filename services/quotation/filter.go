package quotation

import (
	"strings"

	"hostnhome/models"
	"hostnhome/utils"
)

// FilterQuotations applies the in-process part of a listing filter: status and
// a case-insensitive search over guest name, email and phone.
func FilterQuotations(quotations []models.Quotation, filter models.QuotationFilter) []models.Quotation {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Quotation, 0, len(quotations))
	for _, q := range quotations {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if query != "" && !utils.MatchesSearch(query, q.GuestName, q.Email, q.Phone) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// CountByStatus tallies quotations per status, with "all" holding the total.
func CountByStatus(quotations []models.Quotation) map[string]int {
	counts := map[string]int{"all": len(quotations)}
	for _, q := range quotations {
		counts[q.Status]++
	}
	return counts
}
