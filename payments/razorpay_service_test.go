package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_key_secret"
	t.Setenv("RAZORPAY_KEY_SECRET", secret)

	orderID := "order_Nxq1ZLB8BcVGQp"
	paymentID := "pay_Nxq3dR6wHAkKoD"
	valid := signFor(secret, orderID, paymentID)

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, VerifySignature(orderID, paymentID, valid))
	})

	t.Run("tampered signature", func(t *testing.T) {
		tampered := valid[:len(valid)-1] + "0"
		if tampered == valid {
			tampered = valid[:len(valid)-1] + "1"
		}
		assert.ErrorIs(t, VerifySignature(orderID, paymentID, tampered), ErrSignatureMismatch)
	})

	t.Run("signature for a different order", func(t *testing.T) {
		other := signFor(secret, "order_other", paymentID)
		assert.ErrorIs(t, VerifySignature(orderID, paymentID, other), ErrSignatureMismatch)
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.ErrorIs(t, VerifySignature(orderID, paymentID, ""), ErrSignatureMismatch)
	})
}

func TestVerifySignatureFailsClosedWithoutSecret(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	err := VerifySignature("order_x", "pay_y", "anything")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestCreateOrderRequiresCredentials(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	// Without credentials no network call is attempted.
	_, err := CreateOrder(decimal.NewFromInt(7056), "INR", "DWK12345678", nil)
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestEnabled(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	assert.True(t, Enabled())

	t.Setenv("RAZORPAY_KEY_SECRET", "")
	assert.False(t, Enabled())
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"7056.00", 705600},
		{"6496.00", 649600},
		{"0.50", 50},
		{"0", 0},
		{"1234.56", 123456},
		{"99.999", 10000}, // rounds half-up at the paise boundary
	}
	for _, tt := range tests {
		amount, err := decimal.NewFromString(tt.amount)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, ToMinorUnits(amount), "amount %s", tt.amount)
	}
}
