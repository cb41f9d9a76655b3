package service

type PurchaseLine struct {
	TicketID int64 `json:"ticket_id"`
	Quantity int   `json:"quantity"`
}

type CreateTransactionCommand struct {
	UserID          int64
	EventID         int64
	Lines           []PurchaseLine
	CouponCode      string
	PointsRequested int64
}

type UploadProofCommand struct {
	TransactionID int64
	RequesterID   int64
	ProofRef      string
}

type ConfirmTransactionCommand struct {
	TransactionID int64
	OrganizerID   int64
	Decision      string
}

type ListTransactionsQuery struct {
	UserID int64
	Limit  int
	Offset int
}

type ListEventTransactionsQuery struct {
	EventID     int64
	OrganizerID int64
	Limit       int
	Offset      int
}

type ListNotificationsQuery struct {
	UserID int64
	Limit  int
	Offset int
}

// NotificationJob is the queue payload for one outbox row. The JSON
// body is stored in the outbox at transition time; the publisher adds
// the row ID before handing it to the broker.
type NotificationJob struct {
	OutboxID      int64  `json:"outbox_id"`
	TransactionID int64  `json:"transaction_id"`
	Kind          string `json:"kind"`
	UserID        int64  `json:"user_id"`
	Email         string `json:"email"`
	BuyerName     string `json:"buyer_name"`
	EventName     string `json:"event_name"`
	FinalAmount   int64  `json:"final_amount"`
}
