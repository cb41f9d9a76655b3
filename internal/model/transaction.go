package model

import "time"

type TransactionStatus string

const (
	TransactionStatusWaitingPayment      TransactionStatus = "WAITING_FOR_PAYMENT"
	TransactionStatusWaitingConfirmation TransactionStatus = "WAITING_FOR_ADMIN_CONFIRMATION"
	TransactionStatusDone                TransactionStatus = "DONE"
	TransactionStatusRejected            TransactionStatus = "REJECTED"
	TransactionStatusExpired             TransactionStatus = "EXPIRED"
)

// Terminal reports whether no further status transition is permitted.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusDone || s == TransactionStatusRejected || s == TransactionStatusExpired
}

type Transaction struct {
	ID              int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	UserID          int64             `gorm:"column:user_id;index"`
	EventID         int64             `gorm:"column:event_id;index"`
	CouponID        *int64            `gorm:"column:coupon_id"`
	TotalAmount     int64             `gorm:"column:total_amount"`
	PointsUsed      int64             `gorm:"column:points_used"`
	FinalAmount     int64             `gorm:"column:final_amount"`
	Status          TransactionStatus `gorm:"column:status"`
	PaymentDeadline time.Time         `gorm:"column:payment_deadline"`
	PaymentProof    *string           `gorm:"column:payment_proof"`
	CreatedAt       time.Time         `gorm:"column:created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at"`

	Event Event               `gorm:"foreignKey:EventID"`
	Lines []TransactionTicket `gorm:"foreignKey:TransactionID"`
}

// TransactionTicket is a purchase line item. Price is snapshotted at
// creation time so later ticket price changes never affect the sale.
type TransactionTicket struct {
	ID            int64 `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TransactionID int64 `gorm:"column:transaction_id;index"`
	TicketID      int64 `gorm:"column:ticket_id"`
	Quantity      int   `gorm:"column:quantity"`
	Price         int64 `gorm:"column:price"`

	Ticket Ticket `gorm:"foreignKey:TicketID"`
}
