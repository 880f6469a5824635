package handlers

import (
	"net/http"
	"strings"

	"hostnhome/middleware"
	"hostnhome/models"
	"hostnhome/utils"

	"github.com/gin-gonic/gin"
)

// authSession returns the caller set by middleware.JWTAuth and writes a 401 if absent.
func authSession(c *gin.Context) (*models.AuthSession, bool) {
	session, ok := middleware.GetAuthSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return nil, false
	}
	return session, true
}

// vendorScope is the vendor whose records the caller may read. Super admins
// get "" (every vendor) unless they pass ?vendorId=.
func vendorScope(c *gin.Context, session *models.AuthSession) string {
	if session.IsSuperAdmin() {
		return strings.TrimSpace(c.Query("vendorId"))
	}
	return session.VendorID
}

// requireVendor is vendorScope for operations that create records, which
// need a concrete vendor.
func requireVendor(c *gin.Context, session *models.AuthSession) (string, bool) {
	vendorID := vendorScope(c, session)
	if vendorID == "" {
		utils.JSONError(c, http.StatusForbidden, "No vendor found", "")
		return "", false
	}
	return vendorID, true
}
