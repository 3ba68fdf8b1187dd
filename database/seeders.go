package database

import (
	"log"
	"time"

	config "github.com/jatinvaland/dwarka-getaways/configs"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ Admin credentials not configured, skipping admin seed.")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	adminUser := models.User{
		FullName: config.ConfigOr("ADMIN_FULL_NAME", "Site Admin"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}
	log.Println("✅ Admin user seeded successfully")
}

// SeedCoupons inserts the starter discount codes when the table is empty.
func SeedCoupons() {
	var count int64
	if err := DB.Model(&models.Coupon{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check coupons: %v", err)
	}
	if count > 0 {
		return
	}

	now := time.Now()
	yearFromNow := now.AddDate(1, 0, 0)
	maxTempleDiscount := decimal.NewFromInt(2000)

	coupons := []models.Coupon{
		{
			Code:             "FIRST500",
			Description:      "Flat ₹500 off your first booking",
			DiscountType:     models.DiscountTypeFixed,
			DiscountValue:    decimal.NewFromInt(500),
			MinBookingAmount: decimal.NewFromInt(2000),
			ValidFrom:        now,
			ValidUntil:       yearFromNow,
			MaxUses:          1000,
			IsActive:         true,
		},
		{
			Code:          "TEMPLE20",
			Description:   "20% off, up to ₹2000",
			DiscountType:  models.DiscountTypePercentage,
			DiscountValue: decimal.NewFromInt(20),
			MaxDiscount:   &maxTempleDiscount,
			ValidFrom:     now,
			ValidUntil:    yearFromNow,
			MaxUses:       500,
			IsActive:      true,
		},
	}
	if err := DB.Create(&coupons).Error; err != nil {
		log.Fatalf("🔥 Failed to seed coupons: %v", err)
	}
	log.Println("✅ Starter coupons seeded")
}

// SeedAmenities inserts the base amenity catalog when empty.
func SeedAmenities() {
	var count int64
	if err := DB.Model(&models.Amenity{}).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check amenities: %v", err)
	}
	if count > 0 {
		return
	}

	amenities := []models.Amenity{
		{Name: "Free Wi-Fi", Icon: "bi-wifi", Category: "facility"},
		{Name: "Parking", Icon: "bi-p-circle", Category: "facility"},
		{Name: "Breakfast", Icon: "bi-cup-hot", Category: "food"},
		{Name: "Air Conditioning", Icon: "bi-snow", Category: "room"},
		{Name: "Temple View", Icon: "bi-building", Category: "room"},
	}
	if err := DB.Create(&amenities).Error; err != nil {
		log.Fatalf("🔥 Failed to seed amenities: %v", err)
	}
	log.Println("✅ Amenity catalog seeded")
}
