package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ExpectedSignature computes the lowercase hex HMAC-SHA256 digest Razorpay
// attaches to a payment callback: the key is the key secret, the message is
// "<order_id>|<payment_id>".
func ExpectedSignature(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the provided signature matches the expected
// one. Comparison is constant-time. A mismatch is a normal false result.
func VerifySignature(secret, gatewayOrderID, gatewayPaymentID, providedSignature string) bool {
	expected := ExpectedSignature(secret, gatewayOrderID, gatewayPaymentID)
	return hmac.Equal([]byte(expected), []byte(providedSignature))
}
