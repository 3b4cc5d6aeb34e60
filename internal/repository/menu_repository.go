package repository

import (
	"context"
	"errors"

	"foodie/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの永続化（保存・取得・削除）だけを約束。
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)
	Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}
