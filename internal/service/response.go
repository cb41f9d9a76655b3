package service

import (
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
)

type TransactionLine struct {
	TicketID int64  `json:"ticket_id"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type TransactionResponse struct {
	TransactionID   int64             `json:"transaction_id"`
	UserID          int64             `json:"user_id"`
	EventID         int64             `json:"event_id"`
	Status          string            `json:"status"`
	TotalAmount     int64             `json:"total_amount"`
	PointsUsed      int64             `json:"points_used"`
	FinalAmount     int64             `json:"final_amount"`
	PaymentDeadline time.Time         `json:"payment_deadline"`
	Lines           []TransactionLine `json:"lines"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

type NotificationResponse struct {
	NotificationID int64     `json:"notification_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

func toTransactionResponse(txn *model.Transaction) TransactionResponse {
	lines := make([]TransactionLine, 0, len(txn.Lines))
	for _, line := range txn.Lines {
		lines = append(lines, TransactionLine{
			TicketID: line.TicketID,
			Name:     line.Ticket.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	return TransactionResponse{
		TransactionID:   txn.ID,
		UserID:          txn.UserID,
		EventID:         txn.EventID,
		Status:          string(txn.Status),
		TotalAmount:     txn.TotalAmount,
		PointsUsed:      txn.PointsUsed,
		FinalAmount:     txn.FinalAmount,
		PaymentDeadline: txn.PaymentDeadline,
		Lines:           lines,
	}
}
