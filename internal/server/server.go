package server

import (
	"net/http"

	"foodie/internal/config"
	"foodie/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers は起動時に束ねる全ハンドラ。
type Handlers struct {
	Auth         *handler.AuthHandler
	Menu         *handler.MenuHandler
	Order        *handler.OrderHandler
	Message      *handler.MessageHandler
	Notification *handler.NotificationHandler
}

// Start はルートを登録してサーバーを起動する。
func Start(addr string, cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	RegisterRoutes(e, cfg, h)

	return e.Start(addr)
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend Running")
	})

	h.Auth.RegisterRoutes(e)
	h.Menu.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Message.RegisterRoutes(e, cfg)
	h.Notification.RegisterRoutes(e, cfg)
}
