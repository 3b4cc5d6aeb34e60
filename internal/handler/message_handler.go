package handler

import (
	"net/http"

	"foodie/internal/config"
	"foodie/internal/middleware"
	"foodie/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/messagesのHTTP
type MessageHandler struct {
	uc *usecase.MessageUsecase
}

// DI
func NewMessageHandler(uc *usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

type SendMessageRequest struct {
	FromUser string `json:"from_user"`
	ToUser   string `json:"to_user"`
	Text     string `json:"text"`
}

// /api/messages を登録
func (h *MessageHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/messages")
	g.Use(middleware.OptionalAuthJWT(cfg))

	g.GET("", h.list)
	g.POST("", h.send)
}

func (h *MessageHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MessageHandler) send(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Send(c.Request().Context(), usecase.SendMessageInput{
		FromUser: req.FromUser,
		ToUser:   req.ToUser,
		Text:     req.Text,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
