package handlers

import (
	"errors"
	"net/http"

	"hostnhome/services/user"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves sign-in and account endpoints.
type UserHandler struct {
	UserService user.UserService
}

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func writeAuthError(c *gin.Context, err error) {
	var inputErr user.InputError
	switch {
	case errors.As(err, &inputErr):
		utils.JSONError(c, http.StatusBadRequest, inputErr.Message, "")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, user.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, user.ErrAuthFailed.Error(), "")
	}
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required", err.Error())
		return
	}
	resp, err := h.UserService.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	getLogger(c).Info("user signed in", zap.String("userId", resp.Session.UserID), zap.String("role", resp.Session.Role))
	c.JSON(http.StatusOK, resp)
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required", err.Error())
		return
	}
	resp, err := h.UserService.SignUp(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	session, ok := authSession(c)
	if !ok {
		return
	}
	usr, err := h.UserService.GetUserByID(c.Request.Context(), session.UserID)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "session": session})
}
