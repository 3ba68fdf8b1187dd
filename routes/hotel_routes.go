package routes

import (
	"github.com/jatinvaland/dwarka-getaways/handlers"
	"github.com/gofiber/fiber/v2"
)

func HotelRoutes(app *fiber.App) {
	hotels := app.Group("/hotels")

	hotels.Get("", handlers.SearchHotels)
	hotels.Get("/:slug", handlers.HotelDetails)
	hotels.Get("/:slug/book", handlers.BookingPage)
}
