package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusReady   OrderStatus = "ready"
)

// readyは終端。キャンセルや差し戻しは無い。
type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID *int64          `gorm:"index" json:"customer_id"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;index;default:'pending'" json:"status"`
	Total      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
