package handler

import (
	"net/http"

	"foodie/internal/config"
	"foodie/internal/middleware"
	"foodie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/notificationsのHTTP
type NotificationHandler struct {
	uc *usecase.NotificationUsecase
}

// DI
func NewNotificationHandler(uc *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type BroadcastRequest struct {
	UserID  *int64 `json:"user_id"`
	Message string `json:"message"`
}

// /api/notifications を登録
func (h *NotificationHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/notifications")
	g.Use(middleware.OptionalAuthJWT(cfg))

	g.GET("", h.list)
	g.POST("", h.broadcast)
}

func (h *NotificationHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Broadcast(c.Request().Context(), usecase.BroadcastInput{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
