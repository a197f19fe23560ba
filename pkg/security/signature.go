// Package security verifies gateway webhook signatures. The check only
// guards the transport boundary; the reconciler still re-fetches every
// payment from the gateway before acting on it.
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign computes the hex HMAC-SHA256 signature the gateway attaches to
// webhook deliveries: the request id and payment id joined the way the
// gateway documents it.
func Sign(secret, requestID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("id:%s;request-id:%s;", paymentID, requestID)))

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook signature in constant time.
func VerifySignature(secret, requestID, paymentID, signature string) error {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("decode hex signature: %w", err)
	}

	want, err := hex.DecodeString(Sign(secret, requestID, paymentID))
	if err != nil {
		return fmt.Errorf("decode expected signature: %w", err)
	}

	if !hmac.Equal(got, want) {
		return fmt.Errorf("signature mismatch")
	}

	return nil
}
