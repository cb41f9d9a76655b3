package repository

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

type TicketRepository interface {
	Reserve(ctx context.Context, ticketID int64, quantity int) error
	Release(ctx context.Context, ticketID int64, quantity int) error
}

type Ticket struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &Ticket{db: db}
}

// Reserve decrements available seats with the availability check in
// the UPDATE itself, so two racing reservations can never both take
// the last seat. Returns ErrNoRowsAffected when seats are short.
func (t *Ticket) Reserve(ctx context.Context, ticketID int64, quantity int) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.Ticket{}).
		Where("id = ? AND available_seats >= ?", ticketID, quantity).
		Updates(map[string]interface{}{
			"available_seats": gorm.Expr("available_seats - ?", quantity),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *Ticket) Release(ctx context.Context, ticketID int64, quantity int) error {
	db := GetTx(ctx, t.db)

	return db.Model(&model.Ticket{}).
		Where("id = ?", ticketID).
		Updates(map[string]interface{}{
			"available_seats": gorm.Expr("available_seats + ?", quantity),
			"updated_at":      time.Now(),
		}).Error
}
