package model

import "time"

const (
	OutboxStateCreated = "CREATED"
	OutboxStatePending = "PENDING"
	OutboxStateSent    = "SENT"
	OutboxStateFailed  = "FAILED"
)

// Outbox rows are written in the same database transaction as the
// state transition they announce, then published to the notification
// queue by the publisher worker. Delivery is best effort; the
// transaction row stays authoritative whatever happens here.
type Outbox struct {
	ID            int64      `gorm:"primaryKey;autoIncrement;<-:create"`
	TransactionID int64      `gorm:"not null;index;<-:create"`
	Kind          string     `gorm:"type:varchar(64);not null;<-:create"`
	Payload       string     `gorm:"type:text;not null;<-:create"`
	State         string     `gorm:"type:enum('CREATED','PENDING','SENT','FAILED');not null"`
	Published     bool       `gorm:"default:false;not null"`
	PublishedAt   *time.Time `gorm:"type:timestamp;null"`
	AttemptCount  int        `gorm:"default:0;not null"`
	LastError     *string    `gorm:"type:text;null"`
	CreatedAt     time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}
