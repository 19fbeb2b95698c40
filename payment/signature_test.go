package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aniket-sharma10/e-commerce-store/payment"
)

func TestVerifySignature(t *testing.T) {
	secret := "shhh"
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("order_123|pay_456"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, payment.VerifySignature("order_123", "pay_456", valid, secret))
	assert.False(t, payment.VerifySignature("order_123", "pay_456", valid, "wrong-secret"))
	assert.False(t, payment.VerifySignature("order_999", "pay_456", valid, secret))
	assert.False(t, payment.VerifySignature("order_123", "pay_456", "deadbeef", secret))
	assert.False(t, payment.VerifySignature("order_123", "pay_456", "", secret))
}
