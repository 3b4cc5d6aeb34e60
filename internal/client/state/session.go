package state

import (
	"context"
	"errors"
	"fmt"
	"log"

	"foodie/internal/domain/model"
)

// 認証に失敗した（リモートもデモ表も不一致）
var ErrInvalidCredentials = errors.New("invalid credentials")

// リモートが落ちているときのデモ用固定クレデンシャル
var demoUsers = []struct {
	Username string
	Password string
	Role     model.Role
}{
	{"user1", "pass1", model.RoleCustomer},
	{"shop1", "shop1", model.RoleShopkeeper},
}

// Login はまずリモートの認証を試す。roleはリモートの応答を優先し、
// 応答に無ければ呼び出し側のroleChoiceで補う。リモートに届かない・
// 失敗したときはデモ表に落ちる。どちらにも合わなければ拒否。
func (a *App) Login(ctx context.Context, username, password string, roleChoice model.Role) error {
	resp, err := a.store.Login(ctx, username, password)
	if err == nil && resp.Token != "" {
		role := model.Role(resp.Role)
		if role == "" {
			role = roleChoice
		}

		a.CurrentUser = username
		a.Token = resp.Token
		a.IsShopkeeper = role == model.RoleShopkeeper
		a.store.SetToken(resp.Token)

		a.Notify(fmt.Sprintf("Welcome %s!", username))

		//ログイン直後に各一覧を読み直す
		a.LoadMenu(ctx)
		a.LoadMessages(ctx)
		a.LoadPendingOrders(ctx)
		return nil
	}
	if err != nil {
		log.Printf("backend login failed, using demo fallback: %v", err)
	}

	for _, u := range demoUsers {
		if u.Username == username && u.Password == password {
			a.CurrentUser = username
			a.IsShopkeeper = u.Role == model.RoleShopkeeper
			a.Notify(fmt.Sprintf("Welcome %s! (demo)", username))
			return nil
		}
	}

	return ErrInvalidCredentials
}

// Logout はセッションの身元・role・カートをすべて消す。
func (a *App) Logout() {
	a.CurrentUser = ""
	a.Token = ""
	a.IsShopkeeper = false
	a.Cart = nil
	a.store.SetToken("")
}
