package routes

import (
	"github.com/jatinvaland/dwarka-getaways/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/", handlers.Home)
	app.Post("/contact", handlers.SubmitContact)
}
