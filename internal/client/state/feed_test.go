package state_test

import (
	"context"
	"testing"
	"time"

	"foodie/internal/client/state"
	"foodie/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendMessage_RejectsEmptyText(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	assert.Equal(t, state.ErrEmptyMessage, app.SendMessage(context.Background(), ""))
	assert.Equal(t, state.ErrEmptyMessage, app.SendMessage(context.Background(), "   \t"))

	assert.Empty(t, app.Messages)
	store.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendMessage_OptimisticThenReload(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.CurrentUser = "user1"

	saved := model.Message{
		ID: 1, FromUser: "user1", ToUser: "shopkeeper",
		Text: "hello", CreatedAt: time.Now(),
	}
	store.On("SendMessage", mock.Anything, "user1", "shopkeeper", "hello").
		Return(saved, nil)
	store.On("ListMessages", mock.Anything).Return([]model.Message{saved}, nil)

	err := app.SendMessage(context.Background(), "hello")

	assert.NoError(t, err)
	// 再読込でサーバーの内容に置き換わっている
	assert.Equal(t, 1, len(app.Messages))
	assert.Equal(t, "hello", app.Messages[0].Text)
	store.AssertExpectations(t)
}

func TestSendMessage_RemoteFailure_KeepsOptimisticEntry(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.CurrentUser = "user1"

	store.On("SendMessage", mock.Anything, "user1", "shopkeeper", "hello").
		Return(model.Message{}, assert.AnError)
	// 送信後の読み直しも失敗
	store.On("ListMessages", mock.Anything).Return(nil, assert.AnError)

	err := app.SendMessage(context.Background(), "hello")

	assert.NoError(t, err)
	assert.Equal(t, 1, len(app.Messages))
	assert.Equal(t, "hello", app.Messages[0].Text)
}

func TestSendMessage_ShopkeeperAddressesCustomer(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.CurrentUser = "shop1"
	app.IsShopkeeper = true

	store.On("SendMessage", mock.Anything, "shop1", "customer", "ready soon").
		Return(model.Message{}, nil)
	store.On("ListMessages", mock.Anything).Return([]model.Message{}, nil)

	err := app.SendMessage(context.Background(), "ready soon")

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestLoadMessages_MapsShopkeeperFlag(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	msgs := []model.Message{
		{FromUser: "user1", ToUser: "shopkeeper", Text: "hi"},
		{FromUser: "shop1", ToUser: "customer", Text: "hello"},
	}
	store.On("ListMessages", mock.Anything).Return(msgs, nil)

	app.LoadMessages(context.Background())

	assert.Equal(t, 2, len(app.Messages))
	assert.False(t, app.Messages[0].FromShopkeeper)
	assert.True(t, app.Messages[1].FromShopkeeper)
}

func TestLoadNotifications(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	ns := []model.Notification{
		{ID: 2, Message: "Order #2 placed"},
		{ID: 1, Message: "Welcome"},
	}
	store.On("ListNotifications", mock.Anything).Return(ns, nil)

	app.LoadNotifications(context.Background())

	assert.Equal(t, []string{"Order #2 placed", "Welcome"}, app.Notifications)
}

func TestNotify_Appends(t *testing.T) {
	app := state.NewApp(new(StoreMock))

	app.Notify("one")
	app.Notify("two")

	assert.Equal(t, []string{"one", "two"}, app.Notifications)
}
