// Package state は画面側のアプリ状態を1つのオブジェクトにまとめる。
//
// 状態は単一のゴルーチンが所有する前提。各メソッドはローカルの楽観的更新を
// 先に適用してからリモートを呼ぶので、画面は常に操作の結果を即座に映す。
// リモート失敗はログに残すだけで状態は戻さない（可用性優先）。
package state

import (
	"context"
	"time"

	"foodie/internal/client/api"
	"foodie/internal/domain/model"

	"github.com/shopspring/decimal"
)

// RemoteStore はバックエンドとの通信の約束。api.Clientが実装する。
type RemoteStore interface {
	SetToken(token string)

	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, name string, price decimal.Decimal, description string) (model.MenuItem, error)
	RemoveMenuItem(ctx context.Context, id int64) error

	ListMessages(ctx context.Context) ([]model.Message, error)
	SendMessage(ctx context.Context, fromUser, toUser, text string) (model.Message, error)

	ListNotifications(ctx context.Context) ([]model.Notification, error)

	ListPendingOrders(ctx context.Context) ([]api.PendingOrder, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	PlaceOrder(ctx context.Context, req api.PlaceOrderRequest) (int64, error)
	MarkOrderReady(ctx context.Context, id int64) error

	Login(ctx context.Context, username, password string) (api.LoginResponse, error)
}

// CartLine はカートの1行。同じメニューにつき1行だけ。
type CartLine struct {
	Item     model.MenuItem
	Quantity int64
}

// Order は画面上の注文。IDは最初ローカル採番（uuid）で、
// リモート保存が成功したらサーバーのIDに置き換わる。
type Order struct {
	ID        string
	Customer  string
	Lines     []CartLine
	Total     string
	Status    model.OrderStatus
	CreatedAt time.Time
}

// FeedMessage はチャット画面の1件。
type FeedMessage struct {
	User           string
	Text           string
	Timestamp      time.Time
	FromShopkeeper bool
}

// App はログイン中セッションの全状態。
// 読み取りはフィールド直接、書き換えは必ずメソッド経由。
type App struct {
	store RemoteStore

	CurrentUser  string
	Token        string
	IsShopkeeper bool

	Menu          []model.MenuItem
	Cart          []CartLine
	PendingOrders []Order
	Messages      []FeedMessage
	Notifications []string
}

func NewApp(store RemoteStore) *App {
	return &App{store: store}
}

// Notify はローカルのお知らせ一覧に追記する。
func (a *App) Notify(text string) {
	a.Notifications = append(a.Notifications, text)
}
