package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"go.uber.org/zap"
)

// paymentWindow is how long a buyer has to upload payment proof before
// the expiry sweep cancels the transaction.
const paymentWindow = 24 * time.Hour

type TransactionService interface {
	Create(ctx context.Context, cmd CreateTransactionCommand) (TransactionResponse, error)
	UploadProof(ctx context.Context, cmd UploadProofCommand) (TransactionResponse, error)
	Confirm(ctx context.Context, cmd ConfirmTransactionCommand) (TransactionResponse, error)
	GetByID(ctx context.Context, transactionID, requesterID int64) (TransactionResponse, error)
	ListByUser(ctx context.Context, query ListTransactionsQuery) (ListTransactionsResponse, error)
	ListByEvent(ctx context.Context, query ListEventTransactionsQuery) (ListTransactionsResponse, error)
	ExpireOverdue(ctx context.Context, batchSize int) (int, error)
}

type transaction struct {
	eventRepo   repository.EventRepository
	userRepo    repository.UserRepository
	txnRepo     repository.TransactionRepository
	outboxRepo  repository.OutboxRepository
	inventory   InventoryService
	rewards     RewardsService
	fulfillment FulfillmentService
	txManager   repository.TxManager
	logger      *zap.Logger
}

func NewTransactionService(eventRepo repository.EventRepository, userRepo repository.UserRepository,
	txnRepo repository.TransactionRepository, outboxRepo repository.OutboxRepository,
	inventory InventoryService, rewards RewardsService, fulfillment FulfillmentService,
	txManager repository.TxManager, logger *zap.Logger) TransactionService {

	return &transaction{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		txnRepo:     txnRepo,
		outboxRepo:  outboxRepo,
		inventory:   inventory,
		rewards:     rewards,
		fulfillment: fulfillment,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create runs the whole purchase as one database transaction: event
// and ticket validation, inventory reservation, coupon and points
// application, and the transaction insert. Any failure rolls every
// step back, so no partially reserved purchase is ever visible.
func (t *transaction) Create(ctx context.Context, cmd CreateTransactionCommand) (TransactionResponse, error) {
	if err := validateCreate(cmd); err != nil {
		return TransactionResponse{}, err
	}

	var created *model.Transaction

	err := t.txManager.WithTx(ctx, func(ctx context.Context) error {
		event, err := t.eventRepo.GetWithTickets(ctx, cmd.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return NewServiceError(constants.ErrCodeEventNotFound, err)
			}
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		ticketsByID := make(map[int64]model.Ticket, len(event.Tickets))
		for _, ticket := range event.Tickets {
			ticketsByID[ticket.ID] = ticket
		}

		var totalAmount int64
		lines := make([]model.TransactionTicket, 0, len(cmd.Lines))

		for _, line := range cmd.Lines {
			ticket, ok := ticketsByID[line.TicketID]
			if !ok {
				return NewServiceError(constants.ErrCodeTicketNotFound,
					errors.New("ticket does not belong to event"))
			}

			if err := t.inventory.Reserve(ctx, ticket.ID, line.Quantity); err != nil {
				return err
			}

			// Price read fresh here and snapshotted into the line.
			totalAmount += ticket.Price * int64(line.Quantity)
			lines = append(lines, model.TransactionTicket{
				TicketID: ticket.ID,
				Quantity: line.Quantity,
				Price:    ticket.Price,
			})
		}

		var discount int64
		var couponID *int64

		if cmd.CouponCode != "" {
			coupon, d, err := t.rewards.ApplyCoupon(ctx, cmd.CouponCode, cmd.UserID, cmd.EventID, totalAmount)
			if err != nil {
				return err
			}
			discount = d
			couponID = &coupon.ID
		}

		pointsUsed, err := t.rewards.ConsumePoints(ctx, cmd.UserID, cmd.PointsRequested, totalAmount-discount)
		if err != nil {
			return err
		}

		finalAmount := totalAmount - discount - pointsUsed
		if finalAmount < 0 {
			finalAmount = 0
		}

		txn := &model.Transaction{
			UserID:          cmd.UserID,
			EventID:         cmd.EventID,
			CouponID:        couponID,
			TotalAmount:     totalAmount,
			PointsUsed:      pointsUsed,
			FinalAmount:     finalAmount,
			Status:          model.TransactionStatusWaitingPayment,
			PaymentDeadline: time.Now().Add(paymentWindow),
			Lines:           lines,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		if err := t.txnRepo.Create(ctx, txn); err != nil {
			t.logger.Error("Failed to insert transaction",
				zap.Int64("userID", cmd.UserID),
				zap.Int64("eventID", cmd.EventID),
				zap.Error(err))
			return NewServiceError(constants.ErrCodeDatabase, err)
		}

		created = txn
		return nil
	})
	if err != nil {
		return TransactionResponse{}, err
	}

	t.logger.Info("Transaction created",
		zap.Int64("transactionID", created.ID),
		zap.Int64("userID", cmd.UserID),
		zap.Int64("totalAmount", created.TotalAmount),
		zap.Int64("pointsUsed", created.PointsUsed),
		zap.Int64("finalAmount", created.FinalAmount))

	return toTransactionResponse(created), nil
}

// UploadProof attaches the payment proof and moves the transaction to
// the organizer's confirmation queue. The status guard in the update
// makes a duplicate upload fail instead of overwriting.
func (t *transaction) UploadProof(ctx context.Context, cmd UploadProofCommand) (TransactionResponse, error) {
	if cmd.ProofRef == "" {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeValidation,
			errors.New("payment proof reference is required"))
	}

	txn, err := t.getTransaction(ctx, cmd.TransactionID)
	if err != nil {
		return TransactionResponse{}, err
	}

	if txn.UserID != cmd.RequesterID {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeForbidden,
			errors.New("only the buyer may upload payment proof"))
	}

	if txn.Status != model.TransactionStatusWaitingPayment {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeInvalidState,
			errors.New("transaction is not waiting for payment"))
	}

	err = t.txnRepo.UpdateProof(ctx, txn.ID, cmd.ProofRef,
		model.TransactionStatusWaitingPayment, model.TransactionStatusWaitingConfirmation)
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return TransactionResponse{}, NewServiceError(constants.ErrCodeInvalidState, err)
		}

		t.logger.Error("Failed to store payment proof",
			zap.Int64("transactionID", txn.ID), zap.Error(err))
		return TransactionResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	t.logger.Info("Payment proof received, awaiting confirmation",
		zap.Int64("transactionID", txn.ID),
		zap.Int64("userID", txn.UserID))

	txn.Status = model.TransactionStatusWaitingConfirmation
	txn.PaymentProof = &cmd.ProofRef

	return toTransactionResponse(txn), nil
}

// Confirm finalizes or rejects a transaction that has payment proof
// attached. DONE keeps the reservation and creates attendee records;
// REJECTED compensates every side effect of Create. Both enqueue a
// notification through the outbox inside the same database
// transaction as the status flip.
func (t *transaction) Confirm(ctx context.Context, cmd ConfirmTransactionCommand) (TransactionResponse, error) {
	decision := model.TransactionStatus(cmd.Decision)
	if decision != model.TransactionStatusDone && decision != model.TransactionStatusRejected {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeValidation,
			errors.New("decision must be DONE or REJECTED"))
	}

	txn, err := t.getTransaction(ctx, cmd.TransactionID)
	if err != nil {
		return TransactionResponse{}, err
	}

	if txn.Event.OrganizerID != cmd.OrganizerID {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeForbidden,
			errors.New("only the event organizer may confirm"))
	}

	if txn.Status != model.TransactionStatusWaitingConfirmation {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeInvalidState,
			errors.New("transaction is not awaiting confirmation"))
	}

	user, err := t.userRepo.GetByID(ctx, txn.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TransactionResponse{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return TransactionResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	if decision == model.TransactionStatusDone {
		err = t.txManager.WithTx(ctx, func(ctx context.Context) error {
			return t.finalize(ctx, txn, user)
		})
	} else {
		err = t.txManager.WithTx(ctx, func(ctx context.Context) error {
			return t.compensate(ctx, txn, user, model.TransactionStatusRejected,
				model.NotificationTypePaymentRejected, "Points refunded for rejected transaction")
		})
	}
	if err != nil {
		return TransactionResponse{}, err
	}

	t.logger.Info("Transaction confirmed",
		zap.Int64("transactionID", txn.ID),
		zap.String("decision", string(decision)),
		zap.Int64("organizerID", cmd.OrganizerID))

	txn.Status = decision
	return toTransactionResponse(txn), nil
}

// finalize flips the status to DONE, writes one attendee row per line
// and enqueues the ticket delivery job. The inventory reservation and
// any coupon or points stay consumed permanently.
func (t *transaction) finalize(ctx context.Context, txn *model.Transaction, user *model.User) error {
	err := t.txnRepo.UpdateStatus(ctx, txn.ID,
		model.TransactionStatusWaitingConfirmation, model.TransactionStatusDone)
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			// A racing confirmation got there first.
			return NewServiceError(constants.ErrCodeInvalidState, err)
		}
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	if err := t.fulfillment.CreateAttendees(ctx, txn); err != nil {
		return err
	}

	return t.enqueueNotification(ctx, txn, user, string(model.NotificationTypeTicketIssued))
}

// compensate reverses everything Create consumed: points back with a
// ledger entry, coupon usable again, seats restored per line. Used by
// rejection and by the deadline sweep.
func (t *transaction) compensate(ctx context.Context, txn *model.Transaction, user *model.User,
	terminal model.TransactionStatus, kind model.NotificationType, refundDescription string) error {

	err := t.txnRepo.UpdateStatus(ctx, txn.ID, txn.Status, terminal)
	if err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewServiceError(constants.ErrCodeInvalidState, err)
		}
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	if txn.PointsUsed > 0 {
		if err := t.rewards.Refund(ctx, txn.UserID, txn.PointsUsed, refundDescription); err != nil {
			return err
		}
	}

	if txn.CouponID != nil {
		if err := t.rewards.ReleaseCoupon(ctx, *txn.CouponID); err != nil {
			return err
		}
	}

	for _, line := range txn.Lines {
		if err := t.inventory.Release(ctx, line.TicketID, line.Quantity); err != nil {
			return err
		}
	}

	return t.enqueueNotification(ctx, txn, user, string(kind))
}

func (t *transaction) GetByID(ctx context.Context, transactionID, requesterID int64) (TransactionResponse, error) {
	txn, err := t.getTransaction(ctx, transactionID)
	if err != nil {
		return TransactionResponse{}, err
	}

	if txn.UserID != requesterID && txn.Event.OrganizerID != requesterID {
		return TransactionResponse{}, NewServiceError(constants.ErrCodeForbidden,
			errors.New("transaction belongs to another user"))
	}

	return toTransactionResponse(txn), nil
}

func (t *transaction) ListByUser(ctx context.Context, query ListTransactionsQuery) (ListTransactionsResponse, error) {
	txns, err := t.txnRepo.ListByUser(query.UserID, query.Limit, query.Offset)
	if err != nil {
		t.logger.Error("Failed to list transactions", zap.Int64("userID", query.UserID), zap.Error(err))
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	total, err := t.txnRepo.CountByUser(query.UserID)
	if err != nil {
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return toListResponse(txns, total), nil
}

func (t *transaction) ListByEvent(ctx context.Context, query ListEventTransactionsQuery) (ListTransactionsResponse, error) {
	event, err := t.eventRepo.GetWithTickets(ctx, query.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeEventNotFound, err)
		}
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	if event.OrganizerID != query.OrganizerID {
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeForbidden,
			errors.New("only the organizer may list event transactions"))
	}

	txns, err := t.txnRepo.ListByEvent(query.EventID, query.Limit, query.Offset)
	if err != nil {
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	total, err := t.txnRepo.CountByEvent(query.EventID)
	if err != nil {
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return toListResponse(txns, total), nil
}

// ExpireOverdue cancels unpaid transactions past their deadline with
// the same compensation as a rejection, landing on EXPIRED. Rows that
// race with a proof upload are skipped, not failed.
func (t *transaction) ExpireOverdue(ctx context.Context, batchSize int) (int, error) {
	overdue, err := t.txnRepo.FindOverdue(time.Now(), batchSize)
	if err != nil {
		t.logger.Error("Failed to find overdue transactions", zap.Error(err))
		return 0, NewServiceError(constants.ErrCodeDatabase, err)
	}

	expired := 0
	for i := range overdue {
		txn := &overdue[i]

		user, err := t.userRepo.GetByID(ctx, txn.UserID)
		if err != nil {
			t.logger.Error("Failed to load buyer for expiry",
				zap.Int64("transactionID", txn.ID), zap.Error(err))
			continue
		}

		err = t.txManager.WithTx(ctx, func(ctx context.Context) error {
			return t.compensate(ctx, txn, user, model.TransactionStatusExpired,
				model.NotificationTypePaymentExpired, "Points refunded for expired transaction")
		})
		if err != nil {
			if CodeOf(err) == constants.ErrCodeInvalidState {
				t.logger.Info("Transaction left WAITING_FOR_PAYMENT before expiry",
					zap.Int64("transactionID", txn.ID))
				continue
			}

			t.logger.Error("Failed to expire transaction",
				zap.Int64("transactionID", txn.ID), zap.Error(err))
			continue
		}

		t.logger.Info("Transaction expired",
			zap.Int64("transactionID", txn.ID),
			zap.Time("paymentDeadline", txn.PaymentDeadline))
		expired++
	}

	return expired, nil
}

func (t *transaction) getTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	txn, err := t.txnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		t.logger.Error("Failed to load transaction", zap.Int64("transactionID", id), zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}

	return txn, nil
}

func (t *transaction) enqueueNotification(ctx context.Context, txn *model.Transaction,
	user *model.User, kind string) error {

	job := NotificationJob{
		TransactionID: txn.ID,
		Kind:          kind,
		UserID:        txn.UserID,
		Email:         user.Email,
		BuyerName:     user.Name,
		EventName:     txn.Event.Name,
		FinalAmount:   txn.FinalAmount,
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return NewServiceError(constants.ErrCodeInternalError, err)
	}

	row := &model.Outbox{
		TransactionID: txn.ID,
		Kind:          kind,
		Payload:       string(payload),
		State:         model.OutboxStateCreated,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := t.outboxRepo.Create(ctx, row); err != nil {
		t.logger.Error("Failed to enqueue notification",
			zap.Int64("transactionID", txn.ID),
			zap.String("kind", kind),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	return nil
}

func validateCreate(cmd CreateTransactionCommand) error {
	if cmd.UserID <= 0 || cmd.EventID <= 0 {
		return NewServiceError(constants.ErrCodeValidation, errors.New("user and event are required"))
	}

	if len(cmd.Lines) == 0 {
		return NewServiceError(constants.ErrCodeValidation, errors.New("at least one ticket line is required"))
	}

	for _, line := range cmd.Lines {
		if line.TicketID <= 0 || line.Quantity <= 0 {
			return NewServiceError(constants.ErrCodeValidation, errors.New("ticket lines need a positive quantity"))
		}
	}

	if cmd.PointsRequested < 0 {
		return NewServiceError(constants.ErrCodeValidation, errors.New("points requested cannot be negative"))
	}

	return nil
}

func toListResponse(txns []model.Transaction, total int) ListTransactionsResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, toTransactionResponse(&txns[i]))
	}

	return ListTransactionsResponse{Transactions: responses, Total: total}
}
