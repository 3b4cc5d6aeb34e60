package repository

import (
	"context"
	"errors"

	"foodie/internal/domain/model"
	repo "foodie/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文の作成
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// IDで注文を取得
func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// pending注文をusersとJOINして新しい順で返す。
// customer_idがNULL（ゲスト注文）の行はusernameが空になる。
func (r *OrderGormRepository) ListPending(ctx context.Context) ([]repo.PendingOrderRow, error) {
	var rows []struct {
		model.Order
		Username string
	}

	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("orders.*, users.username").
		Joins("LEFT JOIN users ON orders.customer_id = users.id").
		Where("orders.status = ?", model.OrderStatusPending).
		Order("orders.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.PendingOrderRow{}, err
	}

	out := make([]repo.PendingOrderRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, repo.PendingOrderRow{
			Order:    row.Order,
			Customer: row.Username,
		})
	}
	return out, nil
}

// ステータス更新
func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type OrderItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

// 明細をまとめて保存
func (r *OrderItemGormRepository) CreateBatch(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// 注文IDで明細を取得
func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}
