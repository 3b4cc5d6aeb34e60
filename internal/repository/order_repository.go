package repository

import (
	"context"

	"foodie/internal/domain/model"
)

// pending一覧の1行。customerはusersとのJOINで埋める（居なければ空）。
type PendingOrderRow struct {
	Order    model.Order
	Customer string
}

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	// statusがpendingのものだけ。新しい順。
	ListPending(ctx context.Context) ([]PendingOrderRow, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
