package security_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clinwell/billing/pkg/security"
)

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	const (
		secret    = "test-secret"
		requestID = "req-123"
		paymentID = "pay-456"
	)

	sig := security.Sign(secret, requestID, paymentID)

	require.NoError(t, security.VerifySignature(secret, requestID, paymentID, sig))
	require.Error(t, security.VerifySignature("other-secret", requestID, paymentID, sig))
	require.Error(t, security.VerifySignature(secret, requestID, "pay-457", sig))
	require.Error(t, security.VerifySignature(secret, requestID, paymentID, "not-hex!"))
	require.Error(t, security.VerifySignature(secret, requestID, paymentID, ""))
}
