package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"foodie/internal/domain/model"
	repo "foodie/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx            repo.TransactionManager
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

// DI
func NewOrderUsecase(tx repo.TransactionManager, orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{
		tx:            tx,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

type PlaceOrderItemInput struct {
	MenuItemID int64
	Quantity   int64
	Price      decimal.Decimal
}

// totalとpriceはクライアントがチェックアウト時点で確定したスナップショット。
// ここで再計算はしない（後からメニュー価格が変わっても注文に影響しない）。
type PlaceOrderInput struct {
	CustomerID *int64
	Total      decimal.Decimal
	Items      []PlaceOrderItemInput
}

type PlaceOrderOutput struct {
	OrderID int64 `json:"order_id"`
}

type PendingOrderOutput struct {
	ID         int64           `json:"id"`
	CustomerID *int64          `json:"customer_id"`
	Customer   string          `json:"customer"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// 注文の作成。注文本体→明細の順に保存してorder_idを返す。
func (u *OrderUsecase) Place(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	if in.Total.IsNegative() {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid total")
	}
	for _, it := range in.Items {
		if it.MenuItemID <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
		}
		if it.Quantity < 1 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	//注文本体と明細は同一トランザクション。明細が保存できなければ本体ごと消える。
	var orderID int64
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().Create(ctx, model.Order{
			CustomerID: in.CustomerID,
			Status:     model.OrderStatusPending,
			Total:      in.Total,
		})
		if err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, model.OrderItem{
				OrderID:    o.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				UnitPrice:  it.Price,
			})
		}
		if err := r.OrderItems().CreateBatch(ctx, items); err != nil {
			return err
		}

		orderID = o.ID
		return nil
	})
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PlaceOrderOutput{OrderID: orderID}, nil
}

// pending注文の一覧（店主画面用）
func (u *OrderUsecase) ListPending(ctx context.Context) ([]PendingOrderOutput, error) {
	rows, err := u.orderRepo.ListPending(ctx)
	if err != nil {
		return []PendingOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]PendingOrderOutput, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingOrderOutput{
			ID:         row.Order.ID,
			CustomerID: row.Order.CustomerID,
			Customer:   row.Customer,
			Total:      row.Order.Total,
			Status:     string(row.Order.Status),
			CreatedAt:  row.Order.CreatedAt,
		})
	}
	return out, nil
}

// 注文IDで明細一覧
func (u *OrderUsecase) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	if orderID <= 0 {
		return []model.OrderItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return []model.OrderItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// ステータス更新。pending→readyのみ。readyは終端。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := strings.TrimSpace(status)
	if newStatus != string(model.OrderStatusReady) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// すでにreadyなら何もしない（200）
	if o.Status == model.OrderStatusReady {
		return nil
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusReady); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
