package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	config "github.com/jatinvaland/dwarka-getaways/configs"
	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/jatinvaland/dwarka-getaways/notifications"
	"github.com/jatinvaland/dwarka-getaways/payments"
	"github.com/jatinvaland/dwarka-getaways/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ProcessBookingRequest struct {
	HotelID    string `form:"hotel_id" validate:"required,uuid"`
	RoomTypeID string `form:"room_type_id" validate:"required,uuid"`
	CheckIn    string `form:"checkin" validate:"required"`
	CheckOut   string `form:"checkout" validate:"required"`
	Adults     int    `form:"adults" validate:"min=1,max=20"`
	Children   int    `form:"children" validate:"min=0,max=20"`
	Rooms      int    `form:"rooms" validate:"min=1,max=10"`

	Title    string `form:"title" validate:"required,oneof=Mr Mrs Ms"`
	FullName string `form:"full_name" validate:"required,min=3,max=200"`
	Email    string `form:"email" validate:"required,email"`
	Phone    string `form:"phone" validate:"required,min=7,max=20"`
	IDType   string `form:"id_type" validate:"required,oneof=aadhaar pan license passport"`
	IDNumber string `form:"id_number" validate:"required,max=50"`

	SpecialRequests string `form:"special_requests"`
	PaymentMethod   string `form:"payment_method" validate:"required,oneof=card netbanking upi razorpay payathotel"`
	CouponCode      string `form:"coupon_code"`
}

// BookingPage computes the unpersisted quote shown before submission.
// Missing or unparseable dates are tolerated here and price a single night;
// they are rejected hard at submission time.
func BookingPage(c *fiber.Ctx) error {
	var hotel models.Hotel
	if err := database.DB.Preload("Amenities").First(&hotel, "slug = ? AND is_active = ?", c.Params("slug"), true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}

	var roomTypes []models.RoomType
	database.DB.Where("hotel_id = ? AND is_available = ?", hotel.ID, true).
		Order("price_per_night").
		Find(&roomTypes)

	nightlyRate := hotel.BasePrice
	var selectedRoom *models.RoomType
	if roomID := c.Query("room"); roomID != "" {
		for i := range roomTypes {
			if roomTypes[i].ID.String() == roomID {
				selectedRoom = &roomTypes[i]
				nightlyRate = roomTypes[i].PricePerNight
				break
			}
		}
	}

	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	nights := 0
	if checkin != "" && checkout != "" {
		inDate, inErr := time.Parse(dateLayout, checkin)
		outDate, outErr := time.Parse(dateLayout, checkout)
		if inErr == nil && outErr == nil && !outDate.Before(inDate) {
			nights = services.NightsBetween(inDate, outDate)
		}
	}

	rooms := c.QueryInt("rooms", 1)
	pricedNights := nights
	if pricedNights < 1 {
		pricedNights = 1
	}
	quote := services.ComputeQuote(services.QuoteInput{
		NightlyRate:          nightlyRate,
		Nights:               pricedNights,
		Rooms:                rooms,
		HotelDiscountPercent: hotel.DiscountPercentage,
	})

	return c.JSON(fiber.Map{
		"hotel":            hotel,
		"room_types":       roomTypes,
		"selected_room":    selectedRoom,
		"checkin":          checkin,
		"checkout":         checkout,
		"adults":           c.QueryInt("adults", 2),
		"children":         c.QueryInt("children", 0),
		"rooms":            rooms,
		"nights":           nights,
		"pricing":          quote,
		"razorpay_enabled": payments.Enabled(),
	})
}

// ProcessBooking converts a submitted stay into a priced, persisted booking
// and branches on payment method: pay-at-hotel confirms immediately, every
// other method goes through the hosted gateway checkout.
func ProcessBooking(c *fiber.Ctx) error {
	var req ProcessBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return redirectToSearch(c, "Could not read the booking form. Please try again.")
	}
	if err := validate.Struct(req); err != nil {
		return redirectToSearch(c, "Please fill in all required booking fields.")
	}

	hotelID, _ := uuid.Parse(req.HotelID)
	roomTypeID, _ := uuid.Parse(req.RoomTypeID)

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ? AND is_active = ?", hotelID, true).Error; err != nil {
		return redirectToSearch(c, "The selected hotel is no longer available.")
	}
	var roomType models.RoomType
	if err := database.DB.First(&roomType, "id = ? AND hotel_id = ?", roomTypeID, hotel.ID).Error; err != nil {
		return redirectToQuote(c, hotel.Slug, &req, "The selected room type is no longer available.")
	}

	checkinDate, inErr := time.Parse(dateLayout, req.CheckIn)
	checkoutDate, outErr := time.Parse(dateLayout, req.CheckOut)
	if inErr != nil || outErr != nil {
		return redirectToQuote(c, hotel.Slug, &req, "Please select valid check-in and check-out dates.")
	}
	if checkoutDate.Before(checkinDate) {
		return redirectToQuote(c, hotel.Slug, &req, "Check-out cannot be before check-in.")
	}

	// Gateway credentials are a precondition for any online method. Reject
	// before persisting anything so no order-creation attempt is ever made.
	if models.IsGatewayMethod(req.PaymentMethod) && !payments.Enabled() {
		return redirectToQuote(c, hotel.Slug, &req, "Online payment is currently unavailable. Please choose Pay at Hotel.")
	}

	nights := services.NightsBetween(checkinDate, checkoutDate)

	baseQuote := services.ComputeQuote(services.QuoteInput{
		NightlyRate:          roomType.PricePerNight,
		Nights:               nights,
		Rooms:                req.Rooms,
		HotelDiscountPercent: hotel.DiscountPercentage,
	})

	couponCode := ""
	couponDiscount := decimal.Zero
	couponNotice := ""
	if req.CouponCode != "" {
		discount, coupon, err := services.ApplyCoupon(database.DB, req.CouponCode, baseQuote.BasePrice)
		switch {
		case err == nil:
			couponCode = coupon.Code
			couponDiscount = discount
		case errors.Is(err, services.ErrCouponNotFound):
			couponNotice = "Coupon code not recognised; booking placed without a discount."
		case errors.Is(err, services.ErrCouponInvalid):
			couponNotice = "Coupon is not valid for this booking; booking placed without a discount."
		default:
			log.Printf("🔥 Coupon lookup failed for %q: %v", req.CouponCode, err)
			couponNotice = "Coupon could not be checked; booking placed without a discount."
		}
	}

	booking, err := createBookingRecords(c, &req, &hotel, &roomType, checkinDate, checkoutDate, nights, couponCode, couponDiscount)
	if errors.Is(err, services.ErrCouponInvalid) {
		// Lost the race for the coupon's last remaining use. Retry once
		// without the discount rather than failing the whole booking.
		couponNotice = "Coupon was exhausted just now; booking placed without a discount."
		booking, err = createBookingRecords(c, &req, &hotel, &roomType, checkinDate, checkoutDate, nights, "", decimal.Zero)
	}
	if err != nil {
		log.Printf("🔥 Booking creation failed: %v", err)
		return redirectToQuote(c, hotel.Slug, &req, "Booking failed. Please try again.")
	}

	if !models.IsGatewayMethod(req.PaymentMethod) {
		msg := fmt.Sprintf("Booking confirmed! Your booking ID is %s. Payment is due at the hotel.", booking.BookingID)
		if couponNotice != "" {
			msg += " " + couponNotice
		}
		return c.Redirect("/bookings/confirmation/" + booking.BookingID + "?notice=" + url.QueryEscape(msg))
	}

	order, err := payments.CreateOrder(
		booking.TotalAmount,
		config.ConfigOr("RAZORPAY_CURRENCY", "INR"),
		booking.BookingID,
		map[string]string{"booking_id": booking.BookingID, "hotel": hotel.Name},
	)
	if err != nil {
		log.Printf("🔥 Razorpay order creation failed for %s: %v", booking.BookingID, err)
		markBookingFailed(booking, fmt.Sprintf("gateway order creation failed: %v", err))
		return redirectToQuote(c, hotel.Slug, &req, "We could not start the online payment. Please retry, or choose Pay at Hotel.")
	}

	if err := database.DB.Model(&models.Payment{}).
		Where("booking_id = ?", booking.ID).
		Update("gateway_order_id", order.ID).Error; err != nil {
		log.Printf("🔥 Failed to store gateway order id for %s: %v", booking.BookingID, err)
		markBookingFailed(booking, "failed to persist gateway order id")
		return redirectToQuote(c, hotel.Slug, &req, "We could not start the online payment. Please retry, or choose Pay at Hotel.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking_id":    booking.BookingID,
		"coupon_notice": couponNotice,
		"checkout": fiber.Map{
			"gateway_order_id": order.ID,
			"key_id":           payments.KeyID(),
			"amount":           payments.ToMinorUnits(booking.TotalAmount),
			"currency":         config.ConfigOr("RAZORPAY_CURRENCY", "INR"),
			"callback_url":     "/bookings/verify-payment",
			"prefill": fiber.Map{
				"name":    req.FullName,
				"email":   req.Email,
				"contact": req.Phone,
			},
		},
	})
}

// createBookingRecords writes the Booking, GuestDetail and Payment rows in a
// single transaction, consuming one coupon use when a code applies. A
// booking never exists without its two siblings.
func createBookingRecords(c *fiber.Ctx, req *ProcessBookingRequest, hotel *models.Hotel, roomType *models.RoomType, checkin, checkout time.Time, nights int, couponCode string, couponDiscount decimal.Decimal) (*models.Booking, error) {
	quote := services.ComputeQuote(services.QuoteInput{
		NightlyRate:          roomType.PricePerNight,
		Nights:               nights,
		Rooms:                req.Rooms,
		HotelDiscountPercent: hotel.DiscountPercentage,
		CouponDiscount:       couponDiscount,
	})

	status := models.BookingStatusPending
	if !models.IsGatewayMethod(req.PaymentMethod) {
		status = models.BookingStatusConfirmed
	}

	booking := models.Booking{
		UserID:          optionalUserID(c),
		HotelID:         hotel.ID,
		RoomTypeID:      roomType.ID,
		CheckIn:         checkin,
		CheckOut:        checkout,
		Nights:          nights,
		NumAdults:       req.Adults,
		NumChildren:     req.Children,
		NumRooms:        req.Rooms,
		BasePrice:       quote.BasePrice,
		DiscountAmount:  quote.DiscountAmount,
		Taxes:           quote.Taxes,
		TotalAmount:     quote.Total,
		CouponCode:      couponCode,
		CouponDiscount:  quote.CouponDiscount,
		Status:          status,
		PaymentStatus:   models.PaymentStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if couponCode != "" {
			if err := services.RedeemCoupon(tx, couponCode); err != nil {
				return err
			}
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		guest := models.GuestDetail{
			BookingID: booking.ID,
			Title:     req.Title,
			FullName:  req.FullName,
			Email:     req.Email,
			Phone:     req.Phone,
			IDType:    req.IDType,
			IDNumber:  req.IDNumber,
		}
		if err := tx.Create(&guest).Error; err != nil {
			return err
		}
		payment := models.Payment{
			BookingID:     booking.ID,
			PaymentMethod: req.PaymentMethod,
			Amount:        quote.Total,
			IsSuccessful:  false,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// markBookingFailed cancels a booking whose gateway order could not be
// created. The failed attempt is kept for audit; a retry creates a fresh
// booking rather than reusing this one.
func markBookingFailed(booking *models.Booking, remarks string) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":         models.BookingStatusCancelled,
				"payment_status": models.PaymentStatusFailed,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).
			Update("remarks", remarks).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to mark booking %s as failed: %v", booking.BookingID, err)
	}
}

type verifyAttemptOutcome int

const (
	verifyProceed verifyAttemptOutcome = iota
	verifyNotGatewayMethod
	verifyAlreadyVerified
	verifyBookingClosed
	verifyIncompleteData
	verifyOrderMismatch
)

// classifyVerifyAttempt decides what a gateway callback may do given the
// stored booking and payment state. Only verifyProceed leads to a signature
// check and writes; every other outcome leaves both rows untouched. A
// cancelled or completed booking can never be confirmed again, however valid
// the signature.
func classifyVerifyAttempt(booking *models.Booking, payment *models.Payment, req *VerifyPaymentRequest) verifyAttemptOutcome {
	if !models.IsGatewayMethod(payment.PaymentMethod) {
		return verifyNotGatewayMethod
	}
	if payment.IsSuccessful {
		return verifyAlreadyVerified
	}
	if !models.CanTransitionStatus(booking.Status, models.BookingStatusConfirmed) {
		return verifyBookingClosed
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return verifyIncompleteData
	}
	if payment.GatewayOrderID != "" && payment.GatewayOrderID != req.RazorpayOrderID {
		return verifyOrderMismatch
	}
	return verifyProceed
}

type VerifyPaymentRequest struct {
	BookingID         string `form:"booking_id"`
	RazorpayOrderID   string `form:"razorpay_order_id"`
	RazorpayPaymentID string `form:"razorpay_payment_id"`
	RazorpaySignature string `form:"razorpay_signature"`
}

// VerifyPayment is the gateway callback. It is idempotent: re-submitting for
// an already verified booking re-renders the confirmation without touching
// the payment record again. A booking that was cancelled while the guest sat
// on the checkout page is never resurrected by the late callback.
func VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil || req.BookingID == "" {
		return redirectToSearch(c, "Payment verification request was malformed.")
	}

	var booking models.Booking
	if err := database.DB.Preload("Hotel").Preload("GuestDetail").
		First(&booking, "booking_id = ?", req.BookingID).Error; err != nil {
		return redirectToSearch(c, "No booking matches this payment attempt.")
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "booking_id = ?", booking.ID).Error; err != nil {
		return redirectToSearch(c, "Invalid payment attempt for this booking.")
	}

	switch classifyVerifyAttempt(&booking, &payment, &req) {
	case verifyNotGatewayMethod, verifyOrderMismatch:
		return redirectToSearch(c, "Invalid payment attempt for this booking.")
	case verifyAlreadyVerified:
		return c.Redirect("/bookings/confirmation/" + booking.BookingID)
	case verifyBookingClosed:
		return redirectToSearch(c, "This booking can no longer accept an online payment. Please create a new booking.")
	case verifyIncompleteData:
		return redirectToQuoteForBooking(c, &booking, "Incomplete payment data received. Please retry the payment.")
	}

	err := payments.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	switch {
	case errors.Is(err, payments.ErrGatewayUnavailable):
		return redirectToQuoteForBooking(c, &booking, "Online payment is temporarily unavailable. Please try again later.")

	case err != nil:
		txnErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
				Updates(map[string]interface{}{
					"gateway_payment_id": req.RazorpayPaymentID,
					"remarks":            "signature verification failed",
				}).Error; err != nil {
				return err
			}
			// The booking itself is not cancelled: the guest may retry the
			// payment for the same reservation.
			return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
				Update("payment_status", models.PaymentStatusFailed).Error
		})
		if txnErr != nil {
			log.Printf("🔥 Failed to record failed verification for %s: %v", booking.BookingID, txnErr)
		}
		return redirectToQuoteForBooking(c, &booking, "Payment verification failed. You have not been charged; please retry.")

	default:
		now := time.Now()
		txnErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
				Updates(map[string]interface{}{
					"is_successful":      true,
					"payment_date":       now,
					"transaction_id":     req.RazorpayPaymentID,
					"gateway_payment_id": req.RazorpayPaymentID,
					"gateway_signature":  req.RazorpaySignature,
				}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
				Updates(map[string]interface{}{
					"status":         models.BookingStatusConfirmed,
					"payment_status": models.PaymentStatusPaid,
				}).Error
		})
		if txnErr != nil {
			log.Printf("🔥 Failed to finalize verified payment for %s: %v", booking.BookingID, txnErr)
			return redirectToQuoteForBooking(c, &booking, "We verified your payment but could not finalize the booking. Please contact support.")
		}

		go services.GenerateBookingInvoice(booking.ID)
		go notifications.SendBookingConfirmation(&booking)

		return c.Redirect("/bookings/confirmation/" + booking.BookingID)
	}
}

// BookingConfirmation renders the finalized booking summary. Safe to reload.
func BookingConfirmation(c *fiber.Ctx) error {
	var booking models.Booking
	if err := database.DB.
		Preload("Hotel").
		Preload("RoomType").
		Preload("GuestDetail").
		Preload("Payment").
		First(&booking, "booking_id = ?", c.Params("bookingID")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	return c.JSON(fiber.Map{
		"booking": booking,
		"notice":  c.Query("notice"),
	})
}

// MyBookings lists the authenticated user's booking history.
func MyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	database.DB.
		Preload("Hotel").
		Preload("RoomType").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

// optionalUserID attributes a booking to a signed-in user when a valid token
// is present. Guest checkout stays anonymous.
func optionalUserID(c *fiber.Ctx) *uuid.UUID {
	auth := c.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil
	}
	token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func redirectToSearch(c *fiber.Ctx, message string) error {
	return c.Redirect("/hotels?error=" + url.QueryEscape(message))
}

// redirectToQuote sends the guest back to the quote view with the error and
// the already-entered stay parameters preserved for re-prefill.
func redirectToQuote(c *fiber.Ctx, hotelSlug string, req *ProcessBookingRequest, message string) error {
	params := url.Values{}
	params.Set("error", message)
	params.Set("room", req.RoomTypeID)
	params.Set("checkin", req.CheckIn)
	params.Set("checkout", req.CheckOut)
	params.Set("adults", strconv.Itoa(req.Adults))
	params.Set("children", strconv.Itoa(req.Children))
	params.Set("rooms", strconv.Itoa(req.Rooms))
	return c.Redirect("/hotels/" + hotelSlug + "/book?" + params.Encode())
}

func redirectToQuoteForBooking(c *fiber.Ctx, booking *models.Booking, message string) error {
	params := url.Values{}
	params.Set("error", message)
	params.Set("room", booking.RoomTypeID.String())
	params.Set("checkin", booking.CheckIn.Format(dateLayout))
	params.Set("checkout", booking.CheckOut.Format(dateLayout))
	params.Set("adults", strconv.Itoa(booking.NumAdults))
	params.Set("children", strconv.Itoa(booking.NumChildren))
	params.Set("rooms", strconv.Itoa(booking.NumRooms))
	return c.Redirect("/hotels/" + booking.Hotel.Slug + "/book?" + params.Encode())
}
