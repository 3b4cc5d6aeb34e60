package state

import (
	"foodie/internal/domain/model"

	"github.com/shopspring/decimal"
)

// カート操作はローカル状態だけを触る。リモート呼び出しは発生しない。

// AddToCart は同じメニューがあれば数量+1、無ければ数量1で追加する。
// 行の並びは追加順のまま。
func (a *App) AddToCart(item model.MenuItem) {
	for i := range a.Cart {
		if a.Cart[i].Item.ID == item.ID {
			a.Cart[i].Quantity++
			return
		}
	}
	a.Cart = append(a.Cart, CartLine{Item: item, Quantity: 1})
}

// RemoveFromCart は行を無条件に消す。
func (a *App) RemoveFromCart(id int64) {
	next := a.Cart[:0]
	for _, line := range a.Cart {
		if line.Item.ID != id {
			next = append(next, line)
		}
	}
	a.Cart = next
}

// UpdateQuantity は数量を差し替える。0以下は行の削除と同じ。
func (a *App) UpdateQuantity(id int64, quantity int64) {
	if quantity <= 0 {
		a.RemoveFromCart(id)
		return
	}
	for i := range a.Cart {
		if a.Cart[i].Item.ID == id {
			a.Cart[i].Quantity = quantity
			return
		}
	}
}

// CartCount はカート内の合計個数（ヘッダのバッジ用）。
func (a *App) CartCount() int64 {
	var n int64
	for _, line := range a.Cart {
		n += line.Quantity
	}
	return n
}

// Total は価格×数量の合計を小数2桁で返す。
// 価格が入っていない行は0円として足す。
func (a *App) Total() string {
	total := decimal.Zero
	for _, line := range a.Cart {
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}
	return total.StringFixed(2)
}
