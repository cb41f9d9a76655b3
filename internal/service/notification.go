package service

import (
	"context"
	"errors"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/ghallymuhammad/eventhub-project-sub000/internal/repository"
	"go.uber.org/zap"
)

type NotificationService interface {
	ListByUser(ctx context.Context, query ListNotificationsQuery) (ListNotificationsResponse, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
}

type notification struct {
	notificationRepo repository.NotificationRepository
	logger           *zap.Logger
}

func NewNotificationService(notificationRepo repository.NotificationRepository,
	logger *zap.Logger) NotificationService {
	return &notification{notificationRepo: notificationRepo, logger: logger}
}

func (n *notification) ListByUser(ctx context.Context, query ListNotificationsQuery) (ListNotificationsResponse, error) {
	rows, err := n.notificationRepo.ListByUser(query.UserID, query.Limit, query.Offset)
	if err != nil {
		n.logger.Error("Failed to list notifications", zap.Int64("userID", query.UserID), zap.Error(err))
		return ListNotificationsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	total, err := n.notificationRepo.CountByUser(query.UserID)
	if err != nil {
		return ListNotificationsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	responses := make([]NotificationResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, NotificationResponse{
			NotificationID: row.ID,
			Type:           string(row.Type),
			Title:          row.Title,
			Message:        row.Message,
			IsRead:         row.IsRead,
			CreatedAt:      row.CreatedAt,
		})
	}

	return ListNotificationsResponse{Notifications: responses, Total: total}, nil
}

func (n *notification) MarkRead(ctx context.Context, notificationID, userID int64) error {
	err := n.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		return NewServiceError(constants.ErrCodeNotificationNotFound,
			errors.New("notification not found for this user"))
	}

	n.logger.Error("Failed to mark notification read",
		zap.Int64("notificationID", notificationID), zap.Error(err))

	return NewServiceError(constants.ErrCodeDatabase, err)
}
