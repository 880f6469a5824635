package handlers

import (
	"errors"
	"net/http"
	"strings"

	"hostnhome/models"
	"hostnhome/services/quotation"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotationHandler serves stored quotations.
type QuotationHandler struct {
	Quotations quotation.QuotationService
}

type quotationView struct {
	models.Quotation
	StatusColor string `json:"status_color"`
	DateRange   string `json:"date_range"`
	TotalLabel  string `json:"total_label"`
}

func newQuotationView(q models.Quotation) quotationView {
	return quotationView{
		Quotation:   q,
		StatusColor: models.QuotationStatusColor(q.Status),
		DateRange:   utils.FormatDateRange(utils.DateOnly(q.CheckIn), utils.DateOnly(q.CheckOut)),
		TotalLabel:  utils.FormatCurrency(q.TotalAmount),
	}
}

func newQuotationViews(quotations []models.Quotation) []quotationView {
	views := make([]quotationView, 0, len(quotations))
	for _, q := range quotations {
		views = append(views, newQuotationView(q))
	}
	return views
}

func writeQuotationError(c *gin.Context, err error) {
	var statusErr *quotation.StatusError
	switch {
	case errors.Is(err, quotation.ErrQuotationNotFound):
		utils.JSONError(c, http.StatusNotFound, "Quotation not found", "")
	case errors.As(err, &statusErr) && statusErr.Code == "unknownStatus":
		utils.JSONError(c, http.StatusBadRequest, "Invalid status", statusErr.Message)
	case errors.As(err, &statusErr):
		utils.JSONError(c, http.StatusConflict, "Invalid status change", statusErr.Message)
	default:
		getLogger(c).Error("quotation request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process quotation", "")
	}
}

// parseQuotationFilter reads status, dateFrom, dateTo and search from the query string.
func parseQuotationFilter(c *gin.Context) (models.QuotationFilter, bool) {
	filter := models.QuotationFilter{
		Status: strings.ToLower(strings.TrimSpace(c.Query("status"))),
		Search: c.Query("search"),
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	if filter.Status != "" && !models.IsQuotationStatus(filter.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status", filter.Status)
		return filter, false
	}
	var err error
	if filter.DateFrom, err = dateQuery(c, "dateFrom", false); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return filter, false
	}
	if filter.DateTo, err = dateQuery(c, "dateTo", true); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return filter, false
	}
	return filter, true
}

// listQuotations writes quotations for a vendor scope together with per-status counts.
func listQuotations(c *gin.Context, svc quotation.QuotationService, vendorID string) {
	filter, ok := parseQuotationFilter(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	quotations, err := svc.List(ctx, vendorID, filter)
	if err != nil {
		writeQuotationError(c, err)
		return
	}
	counts, err := svc.StatusCounts(ctx, vendorID)
	if err != nil {
		writeQuotationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quotations": newQuotationViews(quotations),
		"counts":     counts,
	})
}

// ListQuotations handles GET /api/quotations.
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	listQuotations(c, h.Quotations, vendorScope(c, session))
}

// GetQuotation handles GET /api/quotations/:id.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	q, err := h.Quotations.Get(c.Request.Context(), vendorScope(c, session), c.Param("id"))
	if err != nil {
		writeQuotationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": newQuotationView(*q)})
}

// UpdateQuotationStatus handles PATCH /api/quotations/:id/status.
func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	q, err := h.Quotations.UpdateStatus(c.Request.Context(), vendorScope(c, session), c.Param("id"), status)
	if err != nil {
		writeQuotationError(c, err)
		return
	}
	getLogger(c).Info("quotation status updated", zap.String("quotationId", q.ID), zap.String("status", q.Status))
	c.JSON(http.StatusOK, gin.H{"quotation": newQuotationView(*q)})
}

// DeleteQuotation handles DELETE /api/quotations/:id.
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	if err := h.Quotations.Delete(c.Request.Context(), vendorScope(c, session), c.Param("id")); err != nil {
		writeQuotationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted"})
}
