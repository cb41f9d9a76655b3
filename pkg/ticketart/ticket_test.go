package ticketart_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/pkg/ticketart"
	"github.com/stretchr/testify/assert"
)

func TestGenerator_VerificationPayload(t *testing.T) {
	gen := ticketart.NewGenerator(ticketart.Config{Secret: "test-secret"})
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trips through verify", func(t *testing.T) {
		payload := gen.VerificationPayload(42, "ayu@example.com", issuedAt)

		transactionID, email, err := gen.Verify(payload)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), transactionID)
		assert.Equal(t, "ayu@example.com", email)
	})

	t.Run("email containing the separator round trips", func(t *testing.T) {
		payload := gen.VerificationPayload(42, `"a|yu"@example.com`, issuedAt)

		transactionID, email, err := gen.Verify(payload)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), transactionID)
		assert.Equal(t, `"a|yu"@example.com`, email)
	})

	t.Run("tampered transaction id is refused", func(t *testing.T) {
		payload := gen.VerificationPayload(42, "ayu@example.com", issuedAt)
		tampered := strings.Replace(payload, "42|", "43|", 1)

		_, _, err := gen.Verify(tampered)

		assert.Error(t, err)
	})

	t.Run("signature from another secret is refused", func(t *testing.T) {
		other := ticketart.NewGenerator(ticketart.Config{Secret: "other-secret"})
		payload := other.VerificationPayload(42, "ayu@example.com", issuedAt)

		_, _, err := gen.Verify(payload)

		assert.Error(t, err)
	})

	t.Run("malformed payload is refused", func(t *testing.T) {
		for _, payload := range []string{"", "42", "42|a|b", "x|a|1|sig"} {
			_, _, err := gen.Verify(payload)
			assert.Error(t, err)
		}
	})
}

func TestGenerator_GenerateTicket(t *testing.T) {
	gen := ticketart.NewGenerator(ticketart.Config{Secret: "test-secret"})

	payload := gen.VerificationPayload(42, "ayu@example.com", time.Now())

	artifact, err := gen.GenerateTicket("Go Conference", "Ayu", 130000, payload)

	assert.NoError(t, err)
	assert.NotEmpty(t, artifact)
	assert.True(t, strings.HasPrefix(string(artifact), "%PDF"))
}
