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

func TestLogin_RemoteSuccess(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	store.On("Login", mock.Anything, "user1", "pass1").
		Return(api.LoginResponse{Token: "jwt-token", Role: "customer"}, nil)
	store.On("SetToken", "jwt-token").Return()
	// ログイン直後の読み直し
	store.On("ListMenu", mock.Anything).Return([]model.MenuItem{}, nil)
	store.On("ListMessages", mock.Anything).Return([]model.Message{}, nil)
	store.On("ListPendingOrders", mock.Anything).Return([]api.PendingOrder{}, nil)

	err := app.Login(context.Background(), "user1", "pass1", model.RoleCustomer)

	assert.NoError(t, err)
	assert.Equal(t, "user1", app.CurrentUser)
	assert.Equal(t, "jwt-token", app.Token)
	assert.False(t, app.IsShopkeeper)
	store.AssertExpectations(t)
}

func TestLogin_RemoteRoleWins(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	store.On("Login", mock.Anything, "shop1", "shop1").
		Return(api.LoginResponse{Token: "jwt-token", Role: "shopkeeper"}, nil)
	store.On("SetToken", "jwt-token").Return()
	store.On("ListMenu", mock.Anything).Return([]model.MenuItem{}, nil)
	store.On("ListMessages", mock.Anything).Return([]model.Message{}, nil)
	store.On("ListPendingOrders", mock.Anything).Return([]api.PendingOrder{}, nil)

	// roleChoiceがcustomerでもリモートの応答が優先
	err := app.Login(context.Background(), "shop1", "shop1", model.RoleCustomer)

	assert.NoError(t, err)
	assert.True(t, app.IsShopkeeper)
}

func TestLogin_RemoteOmitsRole_FallsBackToChoice(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	store.On("Login", mock.Anything, "shop1", "shop1").
		Return(api.LoginResponse{Token: "jwt-token"}, nil)
	store.On("SetToken", "jwt-token").Return()
	store.On("ListMenu", mock.Anything).Return([]model.MenuItem{}, nil)
	store.On("ListMessages", mock.Anything).Return([]model.Message{}, nil)
	store.On("ListPendingOrders", mock.Anything).Return([]api.PendingOrder{}, nil)

	err := app.Login(context.Background(), "shop1", "shop1", model.RoleShopkeeper)

	assert.NoError(t, err)
	assert.True(t, app.IsShopkeeper)
}

func TestLogin_RemoteUnreachable_DemoFallback(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	store.On("Login", mock.Anything, "shop1", "shop1").
		Return(api.LoginResponse{}, assert.AnError)

	err := app.Login(context.Background(), "shop1", "shop1", model.RoleCustomer)

	assert.NoError(t, err)
	assert.Equal(t, "shop1", app.CurrentUser)
	assert.True(t, app.IsShopkeeper)
	// デモログインにtokenは無い
	assert.Empty(t, app.Token)
}

func TestLogin_WrongCredentials_Rejected(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)

	store.On("Login", mock.Anything, "wrong", "wrong").
		Return(api.LoginResponse{}, assert.AnError)

	err := app.Login(context.Background(), "wrong", "wrong", model.RoleCustomer)

	assert.Equal(t, state.ErrInvalidCredentials, err)
	assert.Empty(t, app.CurrentUser)
}

func TestLogout_ClearsSessionAndCart(t *testing.T) {
	store := new(StoreMock)
	app := state.NewApp(store)
	app.CurrentUser = "user1"
	app.Token = "jwt-token"
	app.IsShopkeeper = false
	app.AddToCart(item(1, "Pizza", "9.99"))

	store.On("SetToken", "").Return()

	app.Logout()

	assert.Empty(t, app.CurrentUser)
	assert.Empty(t, app.Token)
	assert.False(t, app.IsShopkeeper)
	assert.Empty(t, app.Cart)
	store.AssertExpectations(t)
}
