package state_test

import (
	"testing"

	"foodie/internal/client/state"
	"foodie/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id int64, name, price string) model.MenuItem {
	return model.MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func TestAddToCart_NewAndIncrement(t *testing.T) {
	app := state.NewApp(new(StoreMock))

	pizza := item(1, "Pizza", "9.99")
	app.AddToCart(pizza)
	app.AddToCart(pizza)
	app.AddToCart(item(2, "Fries", "3.50"))

	assert.Equal(t, 2, len(app.Cart))
	assert.Equal(t, int64(2), app.Cart[0].Quantity)
	assert.Equal(t, int64(1), app.Cart[1].Quantity)
	// 追加順が保たれる
	assert.Equal(t, "Pizza", app.Cart[0].Item.Name)
	assert.Equal(t, int64(3), app.CartCount())
}

func TestRemoveFromCart(t *testing.T) {
	app := state.NewApp(new(StoreMock))
	app.AddToCart(item(1, "Pizza", "9.99"))
	app.AddToCart(item(2, "Fries", "3.50"))

	app.RemoveFromCart(1)

	assert.Equal(t, 1, len(app.Cart))
	assert.Equal(t, int64(2), app.Cart[0].Item.ID)
}

func TestUpdateQuantity(t *testing.T) {
	app := state.NewApp(new(StoreMock))
	app.AddToCart(item(1, "Pizza", "9.99"))

	app.UpdateQuantity(1, 5)
	assert.Equal(t, int64(5), app.Cart[0].Quantity)

	// 0以下は行ごと消える
	app.UpdateQuantity(1, 0)
	assert.Empty(t, app.Cart)
}

func TestCart_NeverHoldsNonPositiveQuantity(t *testing.T) {
	app := state.NewApp(new(StoreMock))

	app.AddToCart(item(1, "Pizza", "9.99"))
	app.UpdateQuantity(1, 3)
	app.AddToCart(item(2, "Fries", "3.50"))
	app.UpdateQuantity(2, -1)
	app.AddToCart(item(3, "Cola", "2.00"))
	app.RemoveFromCart(3)

	for _, line := range app.Cart {
		assert.Greater(t, line.Quantity, int64(0))
	}
}

func TestTotal(t *testing.T) {
	app := state.NewApp(new(StoreMock))

	app.AddToCart(item(1, "Pizza", "9.99"))
	app.AddToCart(item(1, "Pizza", "9.99"))
	app.AddToCart(item(2, "Fries", "5.00"))

	assert.Equal(t, "24.98", app.Total())
}

func TestTotal_EmptyCart(t *testing.T) {
	app := state.NewApp(new(StoreMock))
	assert.Equal(t, "0.00", app.Total())
}

func TestTotal_MissingPriceCountsAsZero(t *testing.T) {
	app := state.NewApp(new(StoreMock))

	// Priceゼロ値（未設定）の行
	app.AddToCart(model.MenuItem{ID: 1, Name: "Mystery"})
	app.AddToCart(item(2, "Fries", "5.00"))

	assert.Equal(t, "5.00", app.Total())
}
