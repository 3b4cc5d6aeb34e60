package state

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"foodie/internal/client/api"
	"foodie/internal/domain/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// カートが空のままチェックアウトした
var ErrEmptyCart = errors.New("cart is empty")

// Checkout はカートを注文に変換する。
//
// まずローカルにuuidの仮IDでpending注文を積み、カートを空にし、
// お知らせを出してからリモートへ送る。保存が成功したら仮IDを
// サーバー採番のIDに差し替える。失敗したら注文は仮IDのまま残る
// （リトライもカートの復元もしない）。
func (a *App) Checkout(ctx context.Context) (Order, error) {
	if len(a.Cart) == 0 {
		return Order{}, ErrEmptyCart
	}

	customer := a.CurrentUser
	if customer == "" {
		customer = "guest"
	}

	lines := make([]CartLine, len(a.Cart))
	copy(lines, a.Cart)

	order := Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Lines:     lines,
		Total:     a.Total(),
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	//楽観的更新：先にローカルへ反映
	a.PendingOrders = append(a.PendingOrders, order)
	a.Cart = nil
	a.Notify(fmt.Sprintf("Order #%s placed successfully! Total: $%s", order.ID, order.Total))

	//リモート保存
	req := api.PlaceOrderRequest{
		Total: mustDecimal(order.Total),
	}
	for _, line := range order.Lines {
		req.Items = append(req.Items, api.OrderLine{
			MenuItemID: line.Item.ID,
			Quantity:   line.Quantity,
			Price:      line.Item.Price,
		})
	}

	remoteID, err := a.store.PlaceOrder(ctx, req)
	if err != nil {
		log.Printf("order submit failed, keeping local id %s: %v", order.ID, err)
		return order, nil
	}

	newID := strconv.FormatInt(remoteID, 10)
	a.reconcileOrderID(order.ID, newID)
	order.ID = newID
	a.Notify(fmt.Sprintf("New order from %s! Total: $%s", order.Customer, order.Total))

	return order, nil
}

// reconcileOrderID は仮IDの注文をサーバーIDへ差し替える。
// 一覧の位置は変えない。
func (a *App) reconcileOrderID(tempID, newID string) {
	for i := range a.PendingOrders {
		if a.PendingOrders[i].ID == tempID {
			a.PendingOrders[i].ID = newID
			return
		}
	}
}

// MarkReady は注文をpending一覧から即座に外し、リモートにも伝える。
// リモートが失敗しても一覧には戻さない（ログのみ）。
func (a *App) MarkReady(ctx context.Context, orderID string) {
	next := a.PendingOrders[:0]
	for _, o := range a.PendingOrders {
		if o.ID != orderID {
			next = append(next, o)
		}
	}
	a.PendingOrders = next
	a.Notify(fmt.Sprintf("Order #%s marked as ready for pickup!", orderID))

	//仮IDのままの注文はサーバー側に存在しないので送らない
	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		log.Printf("mark ready skipped, order %s was never saved remotely", orderID)
		return
	}

	if err := a.store.MarkOrderReady(ctx, id); err != nil {
		log.Printf("mark ready failed for order %s: %v", orderID, err)
	}
}

// LoadPendingOrders はpending注文一覧をリモートから読み直す。
func (a *App) LoadPendingOrders(ctx context.Context) {
	rows, err := a.store.ListPendingOrders(ctx)
	if err != nil {
		log.Printf("pending orders load failed: %v", err)
		return
	}

	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		customer := row.Customer
		if customer == "" {
			customer = "customer"
		}

		orders = append(orders, Order{
			ID:        strconv.FormatInt(row.ID, 10),
			Customer:  customer,
			Lines:     a.loadOrderLines(ctx, row.ID),
			Total:     row.Total.StringFixed(2),
			Status:    model.OrderStatus(row.Status),
			CreatedAt: row.CreatedAt,
		})
	}
	a.PendingOrders = orders
}

// loadOrderLines は注文の明細を読む。名前はメニューにあれば補う。
// 読めなければ明細なしで表示する（ログのみ）。
func (a *App) loadOrderLines(ctx context.Context, orderID int64) []CartLine {
	items, err := a.store.ListOrderItems(ctx, orderID)
	if err != nil {
		log.Printf("order items load failed for %d: %v", orderID, err)
		return nil
	}

	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		item := model.MenuItem{ID: it.MenuItemID, Price: it.UnitPrice}
		for _, m := range a.Menu {
			if m.ID == it.MenuItemID {
				item.Name = m.Name
				break
			}
		}
		lines = append(lines, CartLine{Item: item, Quantity: it.Quantity})
	}
	return lines
}

// "12.34"形式の文字列をdecimalへ。Totalの生成値なので失敗しない前提。
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
