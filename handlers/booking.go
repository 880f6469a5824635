package handlers

import (
	"errors"
	"net/http"
	"strings"

	"hostnhome/models"
	"hostnhome/services/booking"
	"hostnhome/services/quotation"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves bookings and quotation conversion.
type BookingHandler struct {
	Bookings booking.BookingService
}

type bookingView struct {
	models.Booking
	Balance     float64 `json:"balance"`
	StatusColor string  `json:"status_color"`
	DateRange   string  `json:"date_range"`
}

func newBookingView(b models.Booking) bookingView {
	return bookingView{
		Booking:     b,
		Balance:     b.Balance(),
		StatusColor: models.BookingStatusColor(b.Status),
		DateRange:   utils.FormatDateRange(utils.DateOnly(b.CheckIn), utils.DateOnly(b.CheckOut)),
	}
}

func writeBookingError(c *gin.Context, err error) {
	var convErr *booking.ConversionError
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, quotation.ErrQuotationNotFound):
		utils.JSONError(c, http.StatusNotFound, "Quotation not found", "")
	case errors.Is(err, booking.ErrInvalidPayment):
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment", err.Error())
	case errors.As(err, &convErr) && len(convErr.Fields) > 0:
		utils.JSONFieldErrors(c, convErr.Message, convErr.Fields)
	case errors.As(err, &convErr):
		utils.JSONError(c, http.StatusConflict, "Quotation cannot be converted", convErr.Message)
	default:
		getLogger(c).Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process booking", "")
	}
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	filter := models.BookingFilter{
		Status:        strings.ToLower(strings.TrimSpace(c.Query("status"))),
		PaymentStatus: strings.ToLower(strings.TrimSpace(c.Query("paymentStatus"))),
		Search:        c.Query("search"),
	}
	var err error
	if filter.DateFrom, err = dateQuery(c, "dateFrom", false); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	if filter.DateTo, err = dateQuery(c, "dateTo", true); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	bookings, err := h.Bookings.ListBookings(c.Request.Context(), vendorScope(c, session), filter)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, newBookingView(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	b, err := h.Bookings.GetBooking(c.Request.Context(), vendorScope(c, session), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": newBookingView(*b)})
}

// ConvertQuotation handles POST /api/quotations/:id/convert.
func (h *BookingHandler) ConvertQuotation(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	b, err := h.Bookings.ConvertQuotation(c.Request.Context(), vendorScope(c, session), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	getLogger(c).Info("quotation converted", zap.String("quotationId", b.QuotationID), zap.String("bookingId", b.ID))
	c.JSON(http.StatusCreated, gin.H{"booking": newBookingView(*b)})
}

// RecordPayment handles PATCH /api/bookings/:id/payment.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	var input struct {
		PaidAmount *float64 `json:"paid_amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Bookings.RecordPayment(c.Request.Context(), vendorScope(c, session), c.Param("id"), *input.PaidAmount)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": newBookingView(*b)})
}
