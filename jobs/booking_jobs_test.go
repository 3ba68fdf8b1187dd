package jobs

import (
	"testing"
	"time"

	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sqlite cannot evaluate the postgres gen_random_uuid() column defaults, so
// the tables are created by hand and ids assigned in the tests.
var jobsTestSchema = []string{
	`CREATE TABLE bookings (
		id text PRIMARY KEY,
		booking_id text, user_id text,
		hotel_id text, room_type_id text,
		check_in datetime, check_out datetime, nights integer,
		num_adults integer, num_children integer, num_rooms integer,
		base_price numeric, discount_amount numeric, taxes numeric, total_amount numeric,
		coupon_code text, coupon_discount numeric,
		status text, payment_status text, special_requests text,
		created_at datetime, updated_at datetime
	)`,
	`CREATE TABLE payments (
		id text PRIMARY KEY,
		booking_id text, payment_method text,
		transaction_id text, gateway_order_id text, gateway_payment_id text, gateway_signature text,
		amount numeric, is_successful boolean, payment_date datetime, remarks text,
		created_at datetime, updated_at datetime
	)`,
}

func setupJobsDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	for _, stmt := range jobsTestSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func seedBooking(t *testing.T, db *gorm.DB, status, paymentStatus string, createdAt, checkOut time.Time) *models.Booking {
	t.Helper()
	booking := models.Booking{
		ID:            uuid.New(),
		HotelID:       uuid.New(),
		RoomTypeID:    uuid.New(),
		CheckIn:       checkOut.AddDate(0, 0, -2),
		CheckOut:      checkOut,
		Nights:        2,
		NumAdults:     2,
		NumRooms:      1,
		BasePrice:     decimal.NewFromInt(7000),
		TotalAmount:   decimal.NewFromInt(7056),
		Status:        status,
		PaymentStatus: paymentStatus,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Omit(clause.Associations).Create(&booking).Error)

	payment := models.Payment{
		ID:             uuid.New(),
		BookingID:      booking.ID,
		PaymentMethod:  models.PaymentMethodRazorpay,
		Amount:         booking.TotalAmount,
		GatewayOrderID: "order_" + booking.BookingID,
	}
	require.NoError(t, db.Create(&payment).Error)
	return &booking
}

func TestExpireStalePendingBookings(t *testing.T) {
	db := setupJobsDB(t)
	now := time.Now()

	stale := seedBooking(t, db, models.BookingStatusPending, models.PaymentStatusPending,
		now.Add(-25*time.Hour), now.AddDate(0, 0, 7))
	fresh := seedBooking(t, db, models.BookingStatusPending, models.PaymentStatusPending,
		now.Add(-1*time.Hour), now.AddDate(0, 0, 7))
	confirmed := seedBooking(t, db, models.BookingStatusConfirmed, models.PaymentStatusPaid,
		now.Add(-48*time.Hour), now.AddDate(0, 0, 7))

	ExpireStalePendingBookings()

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, "id = ?", stale.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, reloaded.Status)
	assert.Equal(t, models.PaymentStatusFailed, reloaded.PaymentStatus)

	var stalePayment models.Payment
	require.NoError(t, db.First(&stalePayment, "booking_id = ?", stale.ID).Error)
	assert.Equal(t, expiredPaymentRemark, stalePayment.Remarks, "cancellation cause must be recorded for audit")

	reloaded = models.Booking{}
	require.NoError(t, db.First(&reloaded, "id = ?", fresh.ID).Error)
	assert.Equal(t, models.BookingStatusPending, reloaded.Status, "bookings inside the grace window stay pending")

	reloaded = models.Booking{}
	require.NoError(t, db.First(&reloaded, "id = ?", confirmed.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)
	assert.Equal(t, models.PaymentStatusPaid, reloaded.PaymentStatus)

	var confirmedPayment models.Payment
	require.NoError(t, db.First(&confirmedPayment, "booking_id = ?", confirmed.ID).Error)
	assert.Empty(t, confirmedPayment.Remarks)
}

func TestCompleteFinishedStays(t *testing.T) {
	db := setupJobsDB(t)
	now := time.Now()

	finished := seedBooking(t, db, models.BookingStatusConfirmed, models.PaymentStatusPaid,
		now.Add(-96*time.Hour), now.AddDate(0, 0, -1))
	upcoming := seedBooking(t, db, models.BookingStatusConfirmed, models.PaymentStatusPaid,
		now.Add(-1*time.Hour), now.AddDate(0, 0, 7))
	cancelled := seedBooking(t, db, models.BookingStatusCancelled, models.PaymentStatusFailed,
		now.Add(-96*time.Hour), now.AddDate(0, 0, -1))

	CompleteFinishedStays()

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, "id = ?", finished.ID).Error)
	assert.Equal(t, models.BookingStatusCompleted, reloaded.Status)

	reloaded = models.Booking{}
	require.NoError(t, db.First(&reloaded, "id = ?", upcoming.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)

	reloaded = models.Booking{}
	require.NoError(t, db.First(&reloaded, "id = ?", cancelled.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, reloaded.Status, "cancelled stays are never completed")
}
