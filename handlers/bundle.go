package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint handler the router needs, assembled
// once in main and passed to route registration.
type HandlerBundle struct {
	// Appointment inventory.
	GetAppointmentOptionsHandler gin.HandlerFunc
	GetSpecialtiesHandler        gin.HandlerFunc

	// Bookings.
	CreateBookingHandler  gin.HandlerFunc
	GetBookingsHandler    gin.HandlerFunc
	GetBookingByIDHandler gin.HandlerFunc

	// Users and admin role.
	GetUsersHandler    gin.HandlerFunc
	CreateUserHandler  gin.HandlerFunc
	PromoteUserHandler gin.HandlerFunc
	DemoteUserHandler  gin.HandlerFunc
	CheckAdminHandler  gin.HandlerFunc

	// Payments.
	CreatePaymentIntentHandler gin.HandlerFunc
	RecordPaymentHandler       gin.HandlerFunc

	// Doctors.
	CreateDoctorHandler gin.HandlerFunc
	GetDoctorsHandler   gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}
