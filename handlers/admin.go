package handlers

import (
	"hostnhome/services/quotation"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates super admin operations across vendors.
type AdminHandler struct {
	Quotations quotation.QuotationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(qs quotation.QuotationService) *AdminHandler {
	return &AdminHandler{Quotations: qs}
}

// ListAllQuotationsHandler returns quotations of every vendor, or of one
// vendor when ?vendorId= is given.
func (ah *AdminHandler) ListAllQuotationsHandler(c *gin.Context) {
	listQuotations(c, ah.Quotations, c.Query("vendorId"))
}
