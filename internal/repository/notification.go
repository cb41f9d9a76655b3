package repository

import (
	"context"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(userID int64, limit, offset int) ([]model.Notification, error)
	CountByUser(userID int64) (int, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

type Notification struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &Notification{db: db}
}

// Create inserts the notification row. A redelivered job carries the
// same outbox id, and the unique key on outbox_id turns the repeated
// insert into a no-op.
func (n *Notification) Create(ctx context.Context, notification *model.Notification) error {
	db := GetTx(ctx, n.db)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(notification).Error
}

func (n *Notification) ListByUser(userID int64, limit, offset int) ([]model.Notification, error) {
	var notifications []model.Notification

	err := n.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (n *Notification) CountByUser(userID int64) (int, error) {
	var count int64

	err := n.db.Model(&model.Notification{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// MarkRead scopes the update to the owning user so one user cannot
// mark another user's notifications.
func (n *Notification) MarkRead(ctx context.Context, id, userID int64) error {
	db := GetTx(ctx, n.db)

	result := db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
