package routes

import (
	"net/http"
	"time"

	"hostnhome/handlers"
	"hostnhome/middleware"
	"hostnhome/models"
	"hostnhome/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// operatorRoles may use the vendor console.
var operatorRoles = []string{models.RoleVendor, models.RoleStaff, models.RoleSuperAdmin}

// RegisterAuthRoutes registers sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.UserHandler.LoginHandler)
		api.POST("/register", hb.UserHandler.RegisterHandler)

		// Protected routes (Require Authentication)
		api.GET("/me", middleware.JWTAuth(), hb.UserHandler.MeHandler)
	}
}

// RegisterQuotationRoutes registers the wizard and stored quotation endpoints.
func RegisterQuotationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotations")
	{
		api.Use(middleware.JWTAuth(), middleware.RequireRole(operatorRoles...))

		wizard := api.Group("/wizard")
		wizard.POST("", hb.WizardHandler.StartWizard)
		wizard.GET("/:id", hb.WizardHandler.GetWizard)
		wizard.PATCH("/:id/fields", hb.WizardHandler.SetWizardFields)
		wizard.POST("/:id/next", hb.WizardHandler.NextStep)
		wizard.POST("/:id/back", hb.WizardHandler.PreviousStep)
		wizard.POST("/:id/resorts/reload", hb.WizardHandler.ReloadResorts)
		wizard.POST("/:id/submit", hb.WizardHandler.SubmitWizard)
		wizard.DELETE("/:id", hb.WizardHandler.CancelWizard)

		api.GET("", hb.QuotationHandler.ListQuotations)
		api.GET("/:id", hb.QuotationHandler.GetQuotation)
		api.PATCH("/:id/status", hb.QuotationHandler.UpdateQuotationStatus)
		api.DELETE("/:id", hb.QuotationHandler.DeleteQuotation)
		api.POST("/:id/convert", hb.BookingHandler.ConvertQuotation)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuth(), middleware.RequireRole(operatorRoles...))
		bookingGroup.GET("", hb.BookingHandler.ListBookings)
		bookingGroup.GET("/:id", hb.BookingHandler.GetBooking)
		bookingGroup.PATCH("/:id/payment", hb.BookingHandler.RecordPayment)
	}
}

// RegisterResortRoutes registers resort endpoints.
func RegisterResortRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	resortGroup := r.Group("/api/resorts")
	{
		resortGroup.Use(middleware.JWTAuth(), middleware.RequireRole(operatorRoles...))
		resortGroup.GET("", hb.ResortHandler.ListResorts)
		resortGroup.GET("/:id", hb.ResortHandler.GetResort)
		resortGroup.POST("", middleware.RequireRole(models.RoleVendor, models.RoleSuperAdmin), hb.ResortHandler.CreateResort)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status := http.StatusOK
		if !health.CheckedAt.IsZero() && !health.Healthy() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "message": "Hi, I'm HostnHome", "services": health})
	})
}

// RegisterAdminRoutes sets up endpoints for super admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuth(), middleware.RequireRole(models.RoleSuperAdmin))
		adminGroup.GET("/quotations", hb.AdminHandler.ListAllQuotationsHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterQuotationRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterResortRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
