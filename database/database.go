package database

import (
	"fmt"
	"log"

	config "github.com/jatinvaland/dwarka-getaways/configs"
	"github.com/jatinvaland/dwarka-getaways/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Amenity{},
		&models.Hotel{},
		&models.RoomType{},
		&models.Review{},
		&models.Destination{},
		&models.ContactMessage{},
		&models.Coupon{},
		&models.Booking{},
		&models.GuestDetail{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}
