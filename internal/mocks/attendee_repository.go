package mocks

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type AttendeeRepository struct {
	mock.Mock
}

func (m *AttendeeRepository) Create(ctx context.Context, attendee *model.Attendee) error {
	args := m.Called(ctx, attendee)
	return args.Error(0)
}
