package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicportal/config"
	"clinicportal/database"
	appointmentRepo "clinicportal/database/repository/appointment"
	bookingRepo "clinicportal/database/repository/booking"
	doctorRepo "clinicportal/database/repository/doctor"
	paymentRepo "clinicportal/database/repository/payment"
	userRepoPkg "clinicportal/database/repository/user"
	"clinicportal/handlers"
	"clinicportal/middleware"
	"clinicportal/routes"
	"clinicportal/services/availability"
	"clinicportal/services/booking"
	"clinicportal/services/doctor"
	"clinicportal/services/payment"
	"clinicportal/services/user"
	"clinicportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	roleCache := utils.GetRoleCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	bkgRepo := bookingRepo.NewMongoBookingRepo(db)
	usrRepo := userRepoPkg.NewMongoUserRepo(db)
	docRepo := doctorRepo.NewMongoDoctorRepo(db)
	payRepo := paymentRepo.NewMongoPaymentRepo(db)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Catalog:  apptRepo,
		Bookings: bkgRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bkgRepo,
	}
	userService := &user.DefaultUserService{
		Repo:  usrRepo,
		Cache: roleCache,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: docRepo,
	}
	paymentService := payment.NewDefaultPaymentService(payRepo, config.AppConfig.PaymentCurrency)

	// handlers.
	appointmentHandler := handlers.NewAppointmentHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAppointmentOptionsHandler: appointmentHandler.GetAppointmentOptionsHandler,
		GetSpecialtiesHandler:        appointmentHandler.GetSpecialtiesHandler,

		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		GetBookingsHandler:    bookingHandler.GetBookingsHandler,
		GetBookingByIDHandler: bookingHandler.GetBookingByIDHandler,

		GetUsersHandler:    userHandler.GetUsersHandler,
		CreateUserHandler:  userHandler.CreateUserHandler,
		PromoteUserHandler: userHandler.PromoteUserHandler,
		DemoteUserHandler:  userHandler.DemoteUserHandler,
		CheckAdminHandler:  userHandler.CheckAdminHandler,

		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,
		RecordPaymentHandler:       paymentHandler.RecordPaymentHandler,

		CreateDoctorHandler: doctorHandler.CreateDoctorHandler,
		GetDoctorsHandler:   doctorHandler.GetDoctorsHandler,
		DeleteDoctorHandler: doctorHandler.DeleteDoctorHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB cleanly: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
