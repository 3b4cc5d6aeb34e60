package state_test

import (
	"context"

	"foodie/internal/client/api"
	"foodie/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// =====================
// Mocks
// =====================

type StoreMock struct{ mock.Mock }

func (m *StoreMock) SetToken(token string) {
	m.Called(token)
}

func (m *StoreMock) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *StoreMock) AddMenuItem(ctx context.Context, name string, price decimal.Decimal, description string) (model.MenuItem, error) {
	args := m.Called(ctx, name, price, description)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *StoreMock) RemoveMenuItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *StoreMock) ListMessages(ctx context.Context) ([]model.Message, error) {
	args := m.Called(ctx)
	msgs, _ := args.Get(0).([]model.Message)
	return msgs, args.Error(1)
}

func (m *StoreMock) SendMessage(ctx context.Context, fromUser, toUser, text string) (model.Message, error) {
	args := m.Called(ctx, fromUser, toUser, text)
	msg, _ := args.Get(0).(model.Message)
	return msg, args.Error(1)
}

func (m *StoreMock) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	args := m.Called(ctx)
	ns, _ := args.Get(0).([]model.Notification)
	return ns, args.Error(1)
}

func (m *StoreMock) ListPendingOrders(ctx context.Context) ([]api.PendingOrder, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]api.PendingOrder)
	return rows, args.Error(1)
}

func (m *StoreMock) ListOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *StoreMock) PlaceOrder(ctx context.Context, req api.PlaceOrderRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StoreMock) MarkOrderReady(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *StoreMock) Login(ctx context.Context, username, password string) (api.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	resp, _ := args.Get(0).(api.LoginResponse)
	return resp, args.Error(1)
}
