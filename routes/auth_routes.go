package routes

import (
	"github.com/jatinvaland/dwarka-getaways/handlers"
	"github.com/jatinvaland/dwarka-getaways/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	admin := app.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/bookings", handlers.ListBookings)
	admin.Get("/messages", handlers.ListContactMessages)
}
