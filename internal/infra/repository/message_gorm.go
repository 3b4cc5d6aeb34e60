package repository

import (
	"context"

	"foodie/internal/domain/model"

	"gorm.io/gorm"
)

type MessageGormRepository struct {
	db *gorm.DB
}

// DI
func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

// 追記順（created_at昇順）で全件
func (r *MessageGormRepository) List(ctx context.Context) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.WithContext(ctx).
		Order("created_at asc").Order("id asc").
		Find(&msgs).Error
	if err != nil {
		return []model.Message{}, err
	}
	return msgs, nil
}

// メッセージの保存
func (r *MessageGormRepository) Create(ctx context.Context, m model.Message) (model.Message, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Message{}, err
	}
	return m, nil
}

type NotificationGormRepository struct {
	db *gorm.DB
}

// DI
func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

// 新しい順で全件
func (r *NotificationGormRepository) List(ctx context.Context) ([]model.Notification, error) {
	var ns []model.Notification
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&ns).Error
	if err != nil {
		return []model.Notification{}, err
	}
	return ns, nil
}

// お知らせの保存
func (r *NotificationGormRepository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return model.Notification{}, err
	}
	return n, nil
}
