package model

import "time"

type NotificationType string

const (
	NotificationTypeTicketIssued    NotificationType = "TICKET_ISSUED"
	NotificationTypePaymentRejected NotificationType = "PAYMENT_REJECTED"
	NotificationTypePaymentExpired  NotificationType = "PAYMENT_EXPIRED"
)

// Notification is the in-app inbox row for one outbox job. OutboxID
// is unique so a requeued delivery never inserts a second row.
type Notification struct {
	ID        int64            `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	OutboxID  int64            `gorm:"column:outbox_id;uniqueIndex;<-:create"`
	UserID    int64            `gorm:"column:user_id;index"`
	Type      NotificationType `gorm:"column:type"`
	Title     string           `gorm:"column:title"`
	Message   string           `gorm:"column:message"`
	IsRead    bool             `gorm:"column:is_read"`
	CreatedAt time.Time        `gorm:"column:created_at"`
	UpdatedAt time.Time        `gorm:"column:updated_at"`
}
