package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/model"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	DebitPoints(ctx context.Context, userID int64, points int64) error
	CreditPoints(ctx context.Context, userID int64, points int64) error
	AppendHistory(ctx context.Context, entry *model.PointHistory) error
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (u *User) GetByID(ctx context.Context, id int64) (*model.User, error) {
	db := GetTx(ctx, u.db)

	var user model.User
	err := db.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

// DebitPoints subtracts from the balance with the balance check in the
// UPDATE, guarding against concurrent overdraw. ErrNoRowsAffected
// means the balance changed underneath the caller.
func (u *User) DebitPoints(ctx context.Context, userID int64, points int64) error {
	db := GetTx(ctx, u.db)

	result := db.Model(&model.User{}).
		Where("id = ? AND point_balance >= ?", userID, points).
		Updates(map[string]interface{}{
			"point_balance": gorm.Expr("point_balance - ?", points),
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

func (u *User) CreditPoints(ctx context.Context, userID int64, points int64) error {
	db := GetTx(ctx, u.db)

	return db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"point_balance": gorm.Expr("point_balance + ?", points),
			"updated_at":    time.Now(),
		}).Error
}

func (u *User) AppendHistory(ctx context.Context, entry *model.PointHistory) error {
	db := GetTx(ctx, u.db)
	return db.Create(entry).Error
}
