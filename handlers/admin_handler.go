package handlers

import (
	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/gofiber/fiber/v2"
)

// ListBookings returns the full booking ledger for back-office review.
func ListBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	query := database.DB.
		Preload("Hotel").
		Preload("GuestDetail").
		Preload("Payment").
		Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list bookings"})
	}
	return c.JSON(bookings)
}

// ListContactMessages returns contact-form submissions, unread first.
func ListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.DB.Order("is_read, created_at desc").Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list messages"})
	}
	return c.JSON(messages)
}
