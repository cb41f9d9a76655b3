package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")

type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	GetByID(ctx context.Context, id int64) (*model.Transaction, error)
	UpdateProof(ctx context.Context, id int64, proof string, from, to model.TransactionStatus) error
	UpdateStatus(ctx context.Context, id int64, from, to model.TransactionStatus) error
	ListByUser(userID int64, limit, offset int) ([]model.Transaction, error)
	CountByUser(userID int64) (int, error)
	ListByEvent(eventID int64, limit, offset int) ([]model.Transaction, error)
	CountByEvent(eventID int64) (int, error)
	FindOverdue(before time.Time, limit int) ([]model.Transaction, error)
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (t *Transaction) Create(ctx context.Context, txn *model.Transaction) error {
	db := GetTx(ctx, t.db)
	return db.Create(txn).Error
}

func (t *Transaction) GetByID(ctx context.Context, id int64) (*model.Transaction, error) {
	db := GetTx(ctx, t.db)

	var txn model.Transaction
	err := db.Preload("Event").
		Preload("Lines").
		Preload("Lines.Ticket").
		Where("id = ?", id).
		First(&txn).Error
	if err == nil {
		return &txn, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

// UpdateProof stores the payment proof and advances the status in one
// guarded UPDATE. ErrNoRowsAffected means the transaction already left
// the expected state.
func (t *Transaction) UpdateProof(ctx context.Context, id int64, proof string,
	from, to model.TransactionStatus) error {

	db := GetTx(ctx, t.db)

	result := db.Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"payment_proof": proof,
			"status":        to,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// UpdateStatus performs the status transition with the current status
// in the WHERE clause, so a racing duplicate observes zero rows.
func (t *Transaction) UpdateStatus(ctx context.Context, id int64, from, to model.TransactionStatus) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
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

func (t *Transaction) ListByUser(userID int64, limit, offset int) ([]model.Transaction, error) {
	var txns []model.Transaction

	err := t.db.Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (t *Transaction) CountByUser(userID int64) (int, error) {
	var count int64

	err := t.db.Model(&model.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (t *Transaction) ListByEvent(eventID int64, limit, offset int) ([]model.Transaction, error) {
	var txns []model.Transaction

	err := t.db.Preload("Lines").
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (t *Transaction) CountByEvent(eventID int64) (int, error) {
	var count int64

	err := t.db.Model(&model.Transaction{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// FindOverdue returns unpaid transactions whose payment deadline has
// passed, oldest first, for the expiry sweep. The event is loaded too;
// the expiry notification renders its name.
func (t *Transaction) FindOverdue(before time.Time, limit int) ([]model.Transaction, error) {
	var txns []model.Transaction

	err := t.db.Preload("Event").
		Preload("Lines").
		Where("status = ? AND payment_deadline < ?", model.TransactionStatusWaitingPayment, before).
		Order("payment_deadline ASC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}

	return txns, nil
}
