package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type ArtifactGenerator struct {
	mock.Mock
}

func (m *ArtifactGenerator) VerificationPayload(transactionID int64, email string, issuedAt time.Time) string {
	args := m.Called(transactionID, email, issuedAt)
	return args.String(0)
}

func (m *ArtifactGenerator) GenerateTicket(eventName, buyerName string, finalAmount int64, payload string) ([]byte, error) {
	args := m.Called(eventName, buyerName, finalAmount, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
