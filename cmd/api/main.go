package main

import (
	"log"
	"time"

	config "github.com/jatinvaland/dwarka-getaways/configs"
	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/jobs"
	"github.com/jatinvaland/dwarka-getaways/notifications"
	"github.com/jatinvaland/dwarka-getaways/payments"
	"github.com/jatinvaland/dwarka-getaways/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	database.SeedAmenities()
	database.SeedCoupons()
	notifications.InitEmailService()

	if !payments.Enabled() {
		log.Println("⚠️ Razorpay credentials not configured; online payment is disabled.")
	}

	c := cron.New()
	c.AddFunc("30 2 * * *", jobs.CompleteFinishedStays)
	c.AddFunc("*/30 * * * *", jobs.ExpireStalePendingBookings)
	go c.Start()
	log.Println("✅ Booking maintenance jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Dwarka Getaways",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.PublicRoutes(app)
	routes.HotelRoutes(app)
	routes.BookingRoutes(app)
	routes.AuthRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Println("✅ Server is running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
