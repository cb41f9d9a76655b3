package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("EVENT_NOT_FOUND")

type EventRepository interface {
	GetWithTickets(ctx context.Context, id int64) (*model.Event, error)
}

type Event struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &Event{db: db}
}

// GetWithTickets loads the event with its ticket types and the
// promotions active at call time.
func (e *Event) GetWithTickets(ctx context.Context, id int64) (*model.Event, error) {
	db := GetTx(ctx, e.db)

	var event model.Event
	now := time.Now()

	err := db.Preload("Tickets").
		Preload("Promotions", "starts_at <= ? AND ends_at >= ?", now, now).
		Where("id = ?", id).
		First(&event).Error
	if err == nil {
		return &event, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}

	return nil, err
}
