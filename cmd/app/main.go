// デモシナリオ：ログイン→メニュー閲覧→カート→チェックアウトを
// 起動中のバックエンドに対して一通り流す。
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"foodie/internal/client/api"
	"foodie/internal/client/catalog"
	"foodie/internal/client/state"
	"foodie/internal/domain/model"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("API_BASE")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	username := flag.String("user", "user1", "username")
	password := flag.String("pass", "pass1", "password")
	flag.Parse()

	ctx := context.Background()

	app := state.NewApp(api.New(baseURL))

	if err := app.Login(ctx, *username, *password, model.RoleCustomer); err != nil {
		log.Fatalf("login failed: %v", err)
	}
	fmt.Printf("logged in as %s (shopkeeper=%v)\n", app.CurrentUser, app.IsShopkeeper)

	app.LoadMenu(ctx)
	if len(app.Menu) == 0 {
		fmt.Println("menu is empty, nothing to order")
		return
	}

	sorted := catalog.SortByName(app.Menu, true)
	fmt.Println("menu:")
	for _, item := range sorted {
		fmt.Printf("  %-30s $%s\n", item.Name, item.Price.StringFixed(2))
	}

	//先頭を2つ、次を1つカートへ
	app.AddToCart(sorted[0])
	app.AddToCart(sorted[0])
	if len(sorted) > 1 {
		app.AddToCart(sorted[1])
	}
	fmt.Printf("cart: %d items, total $%s\n", app.CartCount(), app.Total())

	order, err := app.Checkout(ctx)
	if err != nil {
		log.Fatalf("checkout failed: %v", err)
	}
	fmt.Printf("order #%s placed, total $%s, status %s\n", order.ID, order.Total, order.Status)

	if err := app.SendMessage(ctx, "Is my order ready yet?"); err != nil {
		log.Printf("send message failed: %v", err)
	}

	app.LoadNotifications(ctx)
	for _, n := range app.Notifications {
		fmt.Println("notification:", n)
	}
}
