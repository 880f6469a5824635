package handlers

import (
	"errors"
	"net/http"

	"hostnhome/models"
	"hostnhome/services/resort"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResortHandler serves a vendor's resorts.
type ResortHandler struct {
	Resorts resort.ResortService
}

func writeResortError(c *gin.Context, err error) {
	var inputErr *resort.InputError
	switch {
	case errors.Is(err, resort.ErrResortNotFound):
		utils.JSONError(c, http.StatusNotFound, "Resort not found", "")
	case errors.Is(err, resort.ErrSlugTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.As(err, &inputErr):
		utils.JSONFieldErrors(c, "Please fix the errors in the form", inputErr.Fields)
	default:
		getLogger(c).Error("resort request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process resort", "")
	}
}

// ListResorts handles GET /api/resorts.
func (h *ResortHandler) ListResorts(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	resorts, err := h.Resorts.ListResorts(c.Request.Context(), vendorScope(c, session))
	if err != nil {
		writeResortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resorts": resorts})
}

// GetResort handles GET /api/resorts/:id.
func (h *ResortHandler) GetResort(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	res, err := h.Resorts.GetResort(c.Request.Context(), vendorScope(c, session), c.Param("id"))
	if err != nil {
		writeResortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resort": res})
}

// CreateResort handles POST /api/resorts.
func (h *ResortHandler) CreateResort(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	vendorID, ok := requireVendor(c, session)
	if !ok {
		return
	}
	var input models.ResortInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	res, err := h.Resorts.CreateResort(c.Request.Context(), vendorID, input)
	if err != nil {
		writeResortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"resort": res})
}
