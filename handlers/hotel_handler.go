package handlers

import (
	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// queryList collects a repeated query parameter, e.g. ?star_rating=3&star_rating=4.
func queryList(c *fiber.Ctx, key string) []string {
	var values []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		if v := string(raw); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// SearchHotels lists active hotels with the filter set the search page
// offers: price range, star rating, property type, amenities and sorting.
func SearchHotels(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Hotel{}).Where("is_active = ?", true)

	if minPrice, err := decimal.NewFromString(c.Query("min_price")); err == nil {
		query = query.Where("base_price >= ?", minPrice)
	}
	if maxPrice, err := decimal.NewFromString(c.Query("max_price")); err == nil {
		query = query.Where("base_price <= ?", maxPrice)
	}
	if stars := queryList(c, "star_rating"); len(stars) > 0 {
		query = query.Where("star_rating IN ?", stars)
	}
	if propertyTypes := queryList(c, "property_type"); len(propertyTypes) > 0 {
		query = query.Where("property_type IN ?", propertyTypes)
	}

	switch c.Query("sort", "recommended") {
	case "price_low":
		query = query.Order("base_price")
	case "price_high":
		query = query.Order("base_price desc")
	case "rating":
		query = query.Order("rating desc")
	default:
		query = query.Order("is_featured desc, rating desc")
	}

	var hotels []models.Hotel
	if err := query.Preload("Amenities").Find(&hotels).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search hotels"})
	}

	return c.JSON(fiber.Map{
		"hotels": hotels,
		"count":  len(hotels),
		"search_params": fiber.Map{
			"location": c.Query("location", "Dwarka, Gujarat"),
			"checkin":  c.Query("checkin"),
			"checkout": c.Query("checkout"),
			"guests":   c.Query("guests", "2"),
		},
		"error": c.Query("error"),
	})
}

// HotelDetails shows a single hotel with its available room types and
// approved reviews.
func HotelDetails(c *fiber.Ctx) error {
	var hotel models.Hotel
	if err := database.DB.Preload("Amenities").
		First(&hotel, "slug = ? AND is_active = ?", c.Params("slug"), true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}

	var roomTypes []models.RoomType
	database.DB.Where("hotel_id = ? AND is_available = ?", hotel.ID, true).
		Order("price_per_night").
		Find(&roomTypes)

	var reviews []models.Review
	database.DB.Where("hotel_id = ? AND is_approved = ?", hotel.ID, true).
		Order("created_at desc").
		Limit(10).
		Find(&reviews)

	var relatedHotels []models.Hotel
	database.DB.Where("is_active = ? AND id <> ?", true, hotel.ID).
		Order("is_featured desc, rating desc").
		Limit(3).
		Find(&relatedHotels)

	return c.JSON(fiber.Map{
		"hotel":          hotel,
		"room_types":     roomTypes,
		"reviews":        reviews,
		"related_hotels": relatedHotels,
	})
}
