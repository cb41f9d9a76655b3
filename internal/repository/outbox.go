package repository

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

type OutboxRepository interface {
	Create(ctx context.Context, row *model.Outbox) error
	FindUnpublished(limit int) ([]model.Outbox, error)
	MarkPublished(ctx context.Context, id int64) error
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, lastError string) error
}

type Outbox struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &Outbox{db: db}
}

func (o *Outbox) Create(ctx context.Context, row *model.Outbox) error {
	db := GetTx(ctx, o.db)
	return db.Create(row).Error
}

func (o *Outbox) FindUnpublished(limit int) ([]model.Outbox, error) {
	var rows []model.Outbox

	err := o.db.Where("published = ? AND state = ?", false, model.OutboxStateCreated).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (o *Outbox) MarkPublished(ctx context.Context, id int64) error {
	db := GetTx(ctx, o.db)

	publishedAt := time.Now()
	return db.Model(&model.Outbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":        model.OutboxStatePending,
			"published":    true,
			"published_at": publishedAt,
			"updated_at":   time.Now(),
		}).Error
}

func (o *Outbox) MarkSent(ctx context.Context, id int64) error {
	db := GetTx(ctx, o.db)

	return db.Model(&model.Outbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":         model.OutboxStateSent,
			"attempt_count": gorm.Expr("attempt_count + 1"),
			"updated_at":    time.Now(),
		}).Error
}

func (o *Outbox) MarkFailed(ctx context.Context, id int64, lastError string) error {
	db := GetTx(ctx, o.db)

	return db.Model(&model.Outbox{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":         model.OutboxStateFailed,
			"attempt_count": gorm.Expr("attempt_count + 1"),
			"last_error":    lastError,
			"updated_at":    time.Now(),
		}).Error
}
