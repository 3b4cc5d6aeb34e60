package state_test

import (
	"context"
	"testing"

	"foodie/internal/client/api"
	"foodie/internal/client/state"
	"foodie/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckout_EmptyCart(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	_, err := app.Checkout(context.Background())

	assert.Equal(t, state.ErrEmptyCart, err)
	assert.Empty(t, app.PendingOrders)
	store.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestCheckout_Success_ReconcilesRemoteID(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.CurrentUser = "user1"

	app.AddToCart(item(1, "Pizza", "10.00"))

	store.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(req api.PlaceOrderRequest) bool {
		return len(req.Items) == 1 &&
			req.Items[0].MenuItemID == int64(1) &&
			req.Items[0].Quantity == int64(1) &&
			req.Total.String() == "10"
	})).Return(int64(42), nil)

	order, err := app.Checkout(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "42", order.ID)
	assert.Equal(t, "10.00", order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	// カートは空になり、pending一覧にはサーバーIDで載っている
	assert.Empty(t, app.Cart)
	assert.Equal(t, 1, len(app.PendingOrders))
	assert.Equal(t, "42", app.PendingOrders[0].ID)

	store.AssertExpectations(t)
}

func TestCheckout_RemoteFailure_KeepsTempID(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	app.AddToCart(item(1, "Pizza", "10.00"))

	store.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(int64(0), assert.AnError)

	order, err := app.Checkout(context.Background())

	// リモート失敗はユーザーには見せない
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1, len(app.PendingOrders))
	assert.Equal(t, order.ID, app.PendingOrders[0].ID)
	// カートは戻らない
	assert.Empty(t, app.Cart)
}

func TestMarkReady_RemovesFromPendingView(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.AddToCart(item(1, "Pizza", "10.00"))

	store.On("PlaceOrder", mock.Anything, mock.Anything).Return(int64(7), nil)
	order, err := app.Checkout(context.Background())
	assert.NoError(t, err)

	store.On("MarkOrderReady", mock.Anything, int64(7)).Return(nil)

	app.MarkReady(context.Background(), order.ID)

	assert.Empty(t, app.PendingOrders)
	store.AssertExpectations(t)
}

func TestMarkReady_RemoteFailure_StillRemoved(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.AddToCart(item(1, "Pizza", "10.00"))

	store.On("PlaceOrder", mock.Anything, mock.Anything).Return(int64(7), nil)
	order, err := app.Checkout(context.Background())
	assert.NoError(t, err)

	store.On("MarkOrderReady", mock.Anything, int64(7)).Return(assert.AnError)

	app.MarkReady(context.Background(), order.ID)

	// リモートが失敗しても一覧には戻さない
	assert.Empty(t, app.PendingOrders)
}

func TestMarkReady_UnreconciledOrder_SkipsRemoteCall(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.AddToCart(item(1, "Pizza", "10.00"))

	// リモート保存に失敗→仮ID（uuid）のまま
	store.On("PlaceOrder", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)
	order, err := app.Checkout(context.Background())
	assert.NoError(t, err)

	app.MarkReady(context.Background(), order.ID)

	assert.Empty(t, app.PendingOrders)
	store.AssertNotCalled(t, "MarkOrderReady", mock.Anything, mock.Anything)
}

func TestLoadPendingOrders(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.Menu = []model.MenuItem{item(1, "Pizza", "9.99")}

	rows := []api.PendingOrder{
		{ID: 3, Customer: "user1", Total: mustDec("15.00"), Status: "pending"},
		{ID: 2, Customer: "", Total: mustDec("8.50"), Status: "pending"},
	}
	store.On("ListPendingOrders", mock.Anything).Return(rows, nil)
	store.On("ListOrderItems", mock.Anything, int64(3)).Return([]model.OrderItem{
		{OrderID: 3, MenuItemID: 1, Quantity: 2, UnitPrice: mustDec("9.99")},
	}, nil)
	store.On("ListOrderItems", mock.Anything, int64(2)).Return([]model.OrderItem{}, nil)

	app.LoadPendingOrders(context.Background())

	assert.Equal(t, 2, len(app.PendingOrders))
	assert.Equal(t, "3", app.PendingOrders[0].ID)
	assert.Equal(t, "15.00", app.PendingOrders[0].Total)
	// 明細も読み直す。名前はメニューから補完。
	assert.Equal(t, 1, len(app.PendingOrders[0].Lines))
	assert.Equal(t, "Pizza", app.PendingOrders[0].Lines[0].Item.Name)
	assert.Equal(t, int64(2), app.PendingOrders[0].Lines[0].Quantity)
	// customer不明は表示用に埋める
	assert.Equal(t, "customer", app.PendingOrders[1].Customer)
	store.AssertExpectations(t)
}

func TestLoadPendingOrders_ItemFetchFailure_KeepsOrderWithoutLines(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	rows := []api.PendingOrder{
		{ID: 3, Customer: "user1", Total: mustDec("15.00"), Status: "pending"},
	}
	store.On("ListPendingOrders", mock.Anything).Return(rows, nil)
	store.On("ListOrderItems", mock.Anything, int64(3)).Return(nil, assert.AnError)

	app.LoadPendingOrders(context.Background())

	// 明細が読めなくても注文自体は一覧に載る
	assert.Equal(t, 1, len(app.PendingOrders))
	assert.Empty(t, app.PendingOrders[0].Lines)
}

func TestLoadPendingOrders_RemoteFailure_KeepsLocalView(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.AddToCart(item(1, "Pizza", "10.00"))

	store.On("PlaceOrder", mock.Anything, mock.Anything).Return(int64(9), nil)
	_, err := app.Checkout(context.Background())
	assert.NoError(t, err)

	store.On("ListPendingOrders", mock.Anything).Return(nil, assert.AnError)

	app.LoadPendingOrders(context.Background())

	assert.Equal(t, 1, len(app.PendingOrders))
}
