package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文の明細。
// unit_priceは注文時点の価格を必ず保存（後からメニュー価格が変わっても影響しない）。
type OrderItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64           `gorm:"not null;index" json:"order_id"`
	MenuItemID int64           `gorm:"not null;index" json:"menu_item_id"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null;column:unit_price" json:"price"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
