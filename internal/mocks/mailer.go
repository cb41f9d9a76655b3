package mocks

import (
	"github.com/stretchr/testify/mock"
)

type Mailer struct {
	mock.Mock
}

func (m *Mailer) SendTicketEmail(to, buyerName, eventName string, finalAmount int64, artifact []byte) error {
	args := m.Called(to, buyerName, eventName, finalAmount, artifact)
	return args.Error(0)
}

func (m *Mailer) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
