package v1

type PurchaseLineRequest struct {
	TicketID int64 `json:"ticket_id"`
	Quantity int   `json:"quantity"`
}

type CreateTransactionRequest struct {
	EventID         int64                 `json:"event_id"`
	Lines           []PurchaseLineRequest `json:"lines"`
	CouponCode      string                `json:"coupon_code"`
	PointsRequested int64                 `json:"points_requested"`
}

type UploadProofRequest struct {
	ProofRef string `json:"proof_ref"`
}

type ConfirmTransactionRequest struct {
	Decision string `json:"decision"`
}
