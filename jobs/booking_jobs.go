package jobs

import (
	"log"
	"time"

	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompleteFinishedStays moves confirmed bookings whose check-out date has
// passed into the completed state. Completed is terminal.
func CompleteFinishedStays() {
	log.Println("Running job: CompleteFinishedStays...")

	result := database.DB.Model(&models.Booking{}).
		Where("status = ? AND check_out < ?", models.BookingStatusConfirmed, time.Now()).
		Update("status", models.BookingStatusCompleted)
	if result.Error != nil {
		log.Printf("🔥 Failed to complete finished stays: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("✅ Marked %d booking(s) as completed", result.RowsAffected)
	}
}

// stale pending bookings older than this never got their payment verified
const pendingPaymentGrace = 24 * time.Hour

// expiredPaymentRemark is written to the payment row so the cancellation
// cause survives for audit, same as gateway failures do.
const expiredPaymentRemark = "expired awaiting payment verification"

// ExpireStalePendingBookings cancels online-payment bookings that were
// handed to the gateway but never verified. The guest gets a fresh booking
// on retry; the abandoned attempt stays on record with its cause.
func ExpireStalePendingBookings() {
	log.Println("Running job: ExpireStalePendingBookings...")

	cutoff := time.Now().Add(-pendingPaymentGrace)
	var expired int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var staleIDs []uuid.UUID
		if err := tx.Model(&models.Booking{}).
			Where("status = ? AND payment_status = ? AND created_at < ?",
				models.BookingStatusPending, models.PaymentStatusPending, cutoff).
			Pluck("id", &staleIDs).Error; err != nil {
			return err
		}
		if len(staleIDs) == 0 {
			return nil
		}

		result := tx.Model(&models.Booking{}).
			Where("id IN ?", staleIDs).
			Updates(map[string]interface{}{
				"status":         models.BookingStatusCancelled,
				"payment_status": models.PaymentStatusFailed,
			})
		if result.Error != nil {
			return result.Error
		}
		expired = result.RowsAffected

		return tx.Model(&models.Payment{}).
			Where("booking_id IN ?", staleIDs).
			Update("remarks", expiredPaymentRemark).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to expire stale pending bookings: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("✅ Expired %d stale pending booking(s)", expired)
	}
}
