package repository

import (
	"context"

	"foodie/internal/domain/model"
)

type MessageRepository interface {
	// created_at昇順（追記順そのまま）
	List(ctx context.Context) ([]model.Message, error)
	Create(ctx context.Context, m model.Message) (model.Message, error)
}

type NotificationRepository interface {
	// created_at降順
	List(ctx context.Context) ([]model.Notification, error)
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
}
