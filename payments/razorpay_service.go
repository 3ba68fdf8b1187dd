package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/jatinvaland/dwarka-getaways/configs"
	"github.com/shopspring/decimal"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

var (
	// ErrGatewayUnavailable means the Razorpay credentials are not
	// configured. Checked before any network call; online payment is simply
	// switched off rather than crashing at request time.
	ErrGatewayUnavailable = errors.New("razorpay gateway is not configured")
	// ErrSignatureMismatch means the callback signature did not match the
	// HMAC computed from the order and payment identifiers.
	ErrSignatureMismatch = errors.New("razorpay signature verification failed")
)

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Enabled reports whether online payment can be offered. Both the key id and
// secret must be present.
func Enabled() bool {
	return config.Config("RAZORPAY_KEY_ID") != "" && config.Config("RAZORPAY_KEY_SECRET") != ""
}

// KeyID is the public key identifier embedded in the hosted checkout payload.
func KeyID() string {
	return config.Config("RAZORPAY_KEY_ID")
}

// ToMinorUnits converts a rupee amount to paise, the integer representation
// Razorpay expects on the wire.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreateOrder registers an order with Razorpay and returns the gateway order.
// The receipt is our public booking reference so gateway dashboards can be
// reconciled against bookings.
func CreateOrder(amount decimal.Decimal, currency, receipt string, notes map[string]string) (*RazorpayOrder, error) {
	if !Enabled() {
		return nil, ErrGatewayUnavailable
	}

	payload := orderRequest{
		Amount:   ToMinorUnits(amount),
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order payload: %v", err)
	}

	req, err := http.NewRequest("POST", razorpayBaseURL+"/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %v", err)
	}
	req.SetBasicAuth(config.Config("RAZORPAY_KEY_ID"), config.Config("RAZORPAY_KEY_SECRET"))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach razorpay: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("Razorpay API error: %s", string(respBody))
		return nil, fmt.Errorf("razorpay order API returned status %d", resp.StatusCode)
	}

	var order RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %v", err)
	}

	log.Println("✅ Razorpay order created for receipt:", receipt)
	return &order, nil
}

// VerifySignature checks that a payment callback genuinely came from
// Razorpay: HMAC-SHA256 over "orderID|paymentID" keyed with the secret must
// equal the supplied signature. Local computation only, no network call.
// Any mismatch or missing configuration fails closed.
func VerifySignature(orderID, paymentID, signature string) error {
	secret := config.Config("RAZORPAY_KEY_SECRET")
	if secret == "" {
		return ErrGatewayUnavailable
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
