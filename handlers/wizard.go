package handlers

import (
	"errors"
	"net/http"

	"hostnhome/models"
	"hostnhome/services/quotation"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the quotation creation wizard.
type WizardHandler struct {
	Sessions quotation.WizardSessionService
}

// wizardView is the wizard plus everything derived from its form.
type wizardView struct {
	*quotation.Wizard
	Quote          quotation.DerivedQuote `json:"quote"`
	SelectedResort *models.Resort         `json:"selectedResort,omitempty"`
}

func newWizardView(w *quotation.Wizard) wizardView {
	return wizardView{Wizard: w, Quote: w.Quote(), SelectedResort: w.Selected()}
}

// writeWizardError maps wizard service errors onto HTTP responses.
func writeWizardError(c *gin.Context, err error) {
	var verr *quotation.ValidationError
	switch {
	case errors.Is(err, quotation.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Quotation wizard not found", err.Error())
	case errors.Is(err, quotation.ErrSubmitInProgress), errors.Is(err, quotation.ErrSessionBusy),
		errors.Is(err, quotation.ErrNotAtPricingStep):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, quotation.ErrUnknownField):
		utils.JSONError(c, http.StatusBadRequest, "Invalid field", err.Error())
	case errors.As(err, &verr):
		utils.JSONFieldErrors(c, quotation.NoticeFixErrors, verr.Fields.Strings())
	default:
		getLogger(c).Error("quotation wizard request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process quotation wizard", "")
	}
}

// owned loads the wizard named in the path and checks it belongs to the caller.
func (h *WizardHandler) owned(c *gin.Context) (*quotation.Wizard, bool) {
	session, ok := authSession(c)
	if !ok {
		return nil, false
	}
	w, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeWizardError(c, err)
		return nil, false
	}
	if !session.IsSuperAdmin() && w.VendorID != session.VendorID {
		writeWizardError(c, quotation.ErrSessionNotFound)
		return nil, false
	}
	return w, true
}

// StartWizard handles POST /api/quotations/wizard.
func (h *WizardHandler) StartWizard(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	vendorID, ok := requireVendor(c, session)
	if !ok {
		return
	}

	w, err := h.Sessions.Start(c.Request.Context(), vendorID)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	getLogger(c).Debug("quotation wizard started", zap.String("wizardId", w.ID))
	c.JSON(http.StatusCreated, gin.H{"wizard": newWizardView(w)})
}

// GetWizard handles GET /api/quotations/wizard/:id.
func (h *WizardHandler) GetWizard(c *gin.Context) {
	w, ok := h.owned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": newWizardView(w)})
}

// SetWizardFields handles PATCH /api/quotations/wizard/:id/fields. The body is
// a flat object of field name to raw value.
func (h *WizardHandler) SetWizardFields(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	id := current.ID
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	w, err := h.Sessions.SetFields(c.Request.Context(), id, values)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": newWizardView(w)})
}

// NextStep handles POST /api/quotations/wizard/:id/next.
func (h *WizardHandler) NextStep(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	id := current.ID
	w, advanced, err := h.Sessions.Advance(c.Request.Context(), id)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advanced": advanced, "wizard": newWizardView(w)})
}

// PreviousStep handles POST /api/quotations/wizard/:id/back. Going back from
// the first step cancels the wizard.
func (h *WizardHandler) PreviousStep(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	id := current.ID
	w, cancelled, err := h.Sessions.Back(c.Request.Context(), id)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled, "wizard": newWizardView(w)})
}

// ReloadResorts handles POST /api/quotations/wizard/:id/resorts/reload.
func (h *WizardHandler) ReloadResorts(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	id := current.ID
	w, err := h.Sessions.ReloadResorts(c.Request.Context(), id)
	if err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": newWizardView(w)})
}

// SubmitWizard handles POST /api/quotations/wizard/:id/submit.
func (h *WizardHandler) SubmitWizard(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	id := current.ID

	w, created, err := h.Sessions.Submit(c.Request.Context(), id)
	if err == nil {
		c.JSON(http.StatusCreated, gin.H{
			"message":   w.Notice,
			"quotation": created,
			"wizard":    newWizardView(w),
		})
		return
	}
	if w == nil {
		writeWizardError(c, err)
		return
	}

	var verr *quotation.ValidationError
	status := http.StatusBadGateway
	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, quotation.ErrNotAtPricingStep), errors.Is(err, quotation.ErrSubmitInProgress):
		status = http.StatusConflict
	}
	message := w.Notice
	if message == "" {
		message = err.Error()
	}
	c.JSON(status, gin.H{
		"message": message,
		"errors":  w.Errors.Strings(),
		"wizard":  newWizardView(w),
	})
}

// CancelWizard handles DELETE /api/quotations/wizard/:id.
func (h *WizardHandler) CancelWizard(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	id := current.ID
	if err := h.Sessions.Cancel(c.Request.Context(), id); err != nil {
		writeWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quotation wizard cancelled"})
}
