package main

import (
	"context"
	"log"

	"foodie/internal/config"
	"foodie/internal/domain/model"
	"foodie/internal/handler"
	"foodie/internal/infra/db"
	infraRepo "foodie/internal/infra/repository"
	"foodie/internal/repository"
	"foodie/internal/server"
	"foodie/internal/usecase"
	"foodie/internal/validator"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	//.envは無くても動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Message{},
		&model.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	messageRepo := infraRepo.NewMessageGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationGormRepository(gormDB)

	//デモユーザー投入（user1/pass1, shop1/shop1）
	seedDemoUsers(userRepo)

	//Usecase生成
	authV := validator.NewAuthValidator(userRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, authV)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	//Handler生成
	h := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Menu:         handler.NewMenuHandler(menuUC),
		Order:        handler.NewOrderHandler(orderUC),
		Message:      handler.NewMessageHandler(messageUC),
		Notification: handler.NewNotificationHandler(notificationUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, h); err != nil {
		log.Fatal(err)
	}
}

// デモ用の固定ユーザーを用意する。既にあれば何もしない。
func seedDemoUsers(users repository.UserRepository) {
	ctx := context.Background()

	demo := []struct {
		username string
		password string
		role     model.Role
	}{
		{"user1", "pass1", model.RoleCustomer},
		{"shop1", "shop1", model.RoleShopkeeper},
	}

	for _, d := range demo {
		if u, err := users.FindByUsername(ctx, d.username); err == nil && u != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("seed %s failed: %v", d.username, err)
			continue
		}

		if err := users.Create(ctx, &model.User{
			Username:     d.username,
			PasswordHash: string(hash),
			Role:         d.role,
		}); err != nil {
			log.Printf("seed %s failed: %v", d.username, err)
		}
	}
}
