package handlers

import (
	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/gofiber/fiber/v2"
)

// Home returns the homepage content: featured and top-rated hotels plus
// featured destinations.
func Home(c *fiber.Ctx) error {
	var featuredHotels []models.Hotel
	database.DB.Where("is_featured = ? AND is_active = ?", true, true).
		Limit(3).
		Find(&featuredHotels)

	var topRatedHotels []models.Hotel
	database.DB.Where("is_active = ?", true).
		Order("rating desc").
		Limit(6).
		Find(&topRatedHotels)

	var destinations []models.Destination
	database.DB.Where("is_featured = ?", true).
		Limit(4).
		Find(&destinations)

	return c.JSON(fiber.Map{
		"featured_hotels":  featuredHotels,
		"top_rated_hotels": topRatedHotels,
		"destinations":     destinations,
	})
}

type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"max=20"`
	Message string `form:"message" validate:"required"`
}

// SubmitContact stores a contact-form submission.
func SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse contact form"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save your message"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you! Your message has been sent successfully.",
	})
}
