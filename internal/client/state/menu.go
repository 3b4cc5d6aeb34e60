package state

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"foodie/internal/domain/model"

	"github.com/shopspring/decimal"
)

// nameかpriceが欠けている、またはpriceが数値として読めない
var ErrInvalidMenuItem = errors.New("name and price are required")

// LoadMenu はメニューをリモートから読み直す。
func (a *App) LoadMenu(ctx context.Context) {
	items, err := a.store.ListMenu(ctx)
	if err != nil {
		log.Printf("menu load failed: %v", err)
		return
	}
	a.Menu = items
}

// AddMenuItem は店主のメニュー追加。
// 仮ID（時刻のミリ秒）で先にローカルへ足し、保存結果のIDと入れ替える。
func (a *App) AddMenuItem(ctx context.Context, name, price, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(price) == "" {
		return ErrInvalidMenuItem
	}

	p, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return ErrInvalidMenuItem
	}

	tempID := time.Now().UnixMilli()
	a.Menu = append(a.Menu, model.MenuItem{
		ID:          tempID,
		Name:        name,
		Price:       p,
		Description: description,
	})

	saved, err := a.store.AddMenuItem(ctx, name, p, description)
	if err != nil {
		log.Printf("menu add failed, keeping local id %d: %v", tempID, err)
		return nil
	}

	for i := range a.Menu {
		if a.Menu[i].ID == tempID {
			a.Menu[i] = saved
			break
		}
	}
	return nil
}

// RemoveMenuItem は店主のメニュー削除。先にローカルから消す。
func (a *App) RemoveMenuItem(ctx context.Context, id int64) {
	next := a.Menu[:0]
	for _, item := range a.Menu {
		if item.ID != id {
			next = append(next, item)
		}
	}
	a.Menu = next

	if err := a.store.RemoveMenuItem(ctx, id); err != nil {
		log.Printf("menu delete failed for %d: %v", id, err)
		return
	}

	a.Notify("Menu item removed")
}
