package usecase

import (
	"context"
	"net/http"
	"strings"

	"foodie/internal/domain/model"
	repo "foodie/internal/repository"
)

// MessageUsecase は /api/messages の業務ロジック。
type MessageUsecase struct {
	messageRepo repo.MessageRepository
}

// DI
func NewMessageUsecase(messageRepo repo.MessageRepository) *MessageUsecase {
	return &MessageUsecase{messageRepo: messageRepo}
}

type SendMessageInput struct {
	FromUser string
	ToUser   string
	Text     string
}

// 追記順で全件
func (u *MessageUsecase) List(ctx context.Context) ([]model.Message, error) {
	msgs, err := u.messageRepo.List(ctx)
	if err != nil {
		return []model.Message{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msgs, nil
}

// メッセージ送信。textとfrom_userは必須。
func (u *MessageUsecase) Send(ctx context.Context, in SendMessageInput) (model.Message, error) {
	if strings.TrimSpace(in.Text) == "" || strings.TrimSpace(in.FromUser) == "" {
		return model.Message{}, NewHTTPError(http.StatusBadRequest, "text and from_user required")
	}

	m, err := u.messageRepo.Create(ctx, model.Message{
		FromUser: in.FromUser,
		ToUser:   in.ToUser,
		Text:     in.Text,
	})
	if err != nil {
		return model.Message{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

// NotificationUsecase は /api/notifications の業務ロジック。
type NotificationUsecase struct {
	notificationRepo repo.NotificationRepository
}

// DI
func NewNotificationUsecase(notificationRepo repo.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notificationRepo: notificationRepo}
}

type BroadcastInput struct {
	UserID  *int64
	Message string
}

// 新しい順で全件
func (u *NotificationUsecase) List(ctx context.Context) ([]model.Notification, error) {
	ns, err := u.notificationRepo.List(ctx)
	if err != nil {
		return []model.Notification{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ns, nil
}

// お知らせの追加
func (u *NotificationUsecase) Broadcast(ctx context.Context, in BroadcastInput) (model.Notification, error) {
	if strings.TrimSpace(in.Message) == "" {
		return model.Notification{}, NewHTTPError(http.StatusBadRequest, "message required")
	}

	n, err := u.notificationRepo.Create(ctx, model.Notification{
		UserID:  in.UserID,
		Message: in.Message,
	})
	if err != nil {
		return model.Notification{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return n, nil
}
