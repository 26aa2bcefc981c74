package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedSignature(t *testing.T) {
	secret := "test-secret"
	orderID := "order_Nxyz123"
	paymentID := "pay_Abc456"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, ExpectedSignature(secret, orderID, paymentID))
}

func TestVerifySignature(t *testing.T) {
	secret := "test-secret"
	orderID := "order_Nxyz123"
	paymentID := "pay_Abc456"
	valid := ExpectedSignature(secret, orderID, paymentID)

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, VerifySignature(secret, orderID, paymentID, valid))
	})

	t.Run("SingleCharacterMutation", func(t *testing.T) {
		for i := 0; i < len(valid); i++ {
			mutated := []byte(valid)
			if mutated[i] == 'a' {
				mutated[i] = 'b'
			} else {
				mutated[i] = 'a'
			}
			assert.False(t, VerifySignature(secret, orderID, paymentID, string(mutated)),
				"mutation at index %d should not verify", i)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		assert.False(t, VerifySignature("other-secret", orderID, paymentID, valid))
	})

	t.Run("WrongPaymentID", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, orderID, "pay_Other", valid))
	})

	t.Run("EmptySignature", func(t *testing.T) {
		assert.False(t, VerifySignature(secret, orderID, paymentID, ""))
	})
}
