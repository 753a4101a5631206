package routes

import (
	"net/http"
	"time"

	"clinicportal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the slot-inventory endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.GetAppointmentOptionsHandler)
	r.GET("/appointmentSpecialty", hb.GetSpecialtiesHandler)
}

// RegisterBookingRoutes registers booking creation and lookup endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.CreateBookingHandler)
	r.GET("/bookings", hb.GetBookingsHandler)
	r.GET("/bookings/:id", hb.GetBookingByIDHandler)
}

// RegisterUserRoutes registers user listing, creation and admin endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/users")
	{
		api.GET("", hb.GetUsersHandler)
		api.POST("", hb.CreateUserHandler)
		api.PUT("/admin/:id", hb.PromoteUserHandler)
		api.DELETE("/admin/:id", hb.DemoteUserHandler)
		api.GET("/admin/:email", hb.CheckAdminHandler)
	}
}

// RegisterPaymentRoutes registers the payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
	r.POST("/payments", hb.RecordPaymentHandler)
}

// RegisterDoctorRoutes registers the doctor profile endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/doctors", hb.CreateDoctorHandler)
	r.GET("/doctors", hb.GetDoctorsHandler)
	r.DELETE("/doctors/:id", hb.DeleteDoctorHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hello Doctor Portal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
