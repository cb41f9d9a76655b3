package model

import "time"

// Attendee is an immutable attendance record, one per confirmed
// transaction line. Rows are insert-only.
type Attendee struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TransactionID int64     `gorm:"column:transaction_id;index;<-:create"`
	EventID       int64     `gorm:"column:event_id;index;<-:create"`
	UserID        int64     `gorm:"column:user_id;<-:create"`
	TicketCode    string    `gorm:"column:ticket_code;uniqueIndex;<-:create"`
	TicketType    string    `gorm:"column:ticket_type;<-:create"`
	Quantity      int       `gorm:"column:quantity;<-:create"`
	TotalPaid     int64     `gorm:"column:total_paid;<-:create"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}
