package state

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"foodie/internal/domain/model"
)

// 空文字・空白だけのメッセージ
var ErrEmptyMessage = errors.New("message is empty")

// SendMessage はチャットに1件送る。
// 先にローカルのフィードへ積んでからリモートへ送り、
// 送信後は成否にかかわらずフィードを読み直す。
func (a *App) SendMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	from := a.CurrentUser
	if from == "" {
		from = "Guest"
	}

	to := string(model.RoleShopkeeper)
	if a.IsShopkeeper {
		to = string(model.RoleCustomer)
	}

	//楽観的更新
	a.Messages = append(a.Messages, FeedMessage{
		User:           from,
		Text:           text,
		Timestamp:      time.Now(),
		FromShopkeeper: a.IsShopkeeper,
	})

	if _, err := a.store.SendMessage(ctx, from, to, text); err != nil {
		log.Printf("message send failed: %v", err)
	}

	a.LoadMessages(ctx)
	return nil
}

// LoadMessages はフィードをリモートから読み直す。
func (a *App) LoadMessages(ctx context.Context) {
	msgs, err := a.store.ListMessages(ctx)
	if err != nil {
		log.Printf("messages load failed: %v", err)
		return
	}

	feed := make([]FeedMessage, 0, len(msgs))
	for _, m := range msgs {
		feed = append(feed, FeedMessage{
			User:           m.FromUser,
			Text:           m.Text,
			Timestamp:      m.CreatedAt,
			FromShopkeeper: m.ToUser == string(model.RoleCustomer),
		})
	}
	a.Messages = feed
}

// LoadNotifications はお知らせ一覧をリモートから読み直す。
func (a *App) LoadNotifications(ctx context.Context) {
	ns, err := a.store.ListNotifications(ctx)
	if err != nil {
		log.Printf("notifications load failed: %v", err)
		return
	}

	list := make([]string, 0, len(ns))
	for _, n := range ns {
		list = append(list, n.Message)
	}
	a.Notifications = list
}
