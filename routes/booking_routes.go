package routes

import (
	"github.com/jatinvaland/dwarka-getaways/handlers"
	"github.com/jatinvaland/dwarka-getaways/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings")

	booking.Post("", handlers.ProcessBooking)
	booking.Post("/verify-payment", handlers.VerifyPayment)
	booking.Get("/confirmation/:bookingID", handlers.BookingConfirmation)
	booking.Get("/my", middleware.Protected(), handlers.MyBookings)
}
