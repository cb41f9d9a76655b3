package repository

import (
	"context"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

type AttendeeRepository interface {
	Create(ctx context.Context, attendee *model.Attendee) error
}

type Attendee struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) AttendeeRepository {
	return &Attendee{db: db}
}

func (a *Attendee) Create(ctx context.Context, attendee *model.Attendee) error {
	db := GetTx(ctx, a.db)
	return db.Create(attendee).Error
}
