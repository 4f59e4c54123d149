package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"consultly/handlers"
	"consultly/middleware"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Calendar     *handlers.CalendarHandler
	Availability *handlers.AvailabilityHandler
	Admin        *handlers.AdminHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	// Public scheduling views.
	api := r.Group("/api/professionals")
	{
		api.GET("/:id/calendar", hb.Calendar.GetCalendar)
		api.GET("/:id/next-slot", hb.Calendar.NextSlot)
		api.GET("/:id/availability", hb.Availability.GetAvailability)
	}

	// Availability management requires professional authentication.
	manage := r.Group("/api/availability")
	manage.Use(middleware.JWTAuthProfessionalMiddleware())
	{
		manage.PUT("", hb.Availability.SetupAvailability)
		manage.DELETE("/:blockId", hb.Availability.DeleteBlock)
	}

	// Booking endpoints.
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("/:id", hb.Booking.GetBooking)
		bookings.GET("", hb.Booking.ListClientBookings)
	}

	// Professional's own booking list.
	mine := r.Group("/api/my-bookings")
	mine.Use(middleware.JWTAuthProfessionalMiddleware())
	{
		mine.GET("", hb.Booking.ListProfessionalBookings)
	}

	// Admin approval workflow.
	admin := r.Group("/api/admin/bookings")
	admin.Use(middleware.JWTAuthAdminMiddleware())
	{
		admin.PUT("/:id/approve", hb.Admin.ApproveBooking)
		admin.PUT("/:id/reject", hb.Admin.RejectBooking)
	}
}
