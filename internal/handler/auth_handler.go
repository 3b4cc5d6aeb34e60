package handler

import (
	"net/http"

	"foodie/internal/usecase"
	"foodie/internal/validator"

	"github.com/labstack/echo/v4"
)

// /api/authのHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// /api/auth/register, /api/auth/login を登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")

	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req usecase.AuthRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		switch err {
		case validator.ErrInvalidInput:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password required"})
		case validator.ErrUsernameAlreadyUsed, usecase.ErrConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "username already used"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "registration failed"})
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req usecase.AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		switch err {
		case validator.ErrInvalidInput:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password required"})
		case usecase.ErrUnauthorized:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "login failed"})
		}
	}

	return c.JSON(http.StatusOK, out)
}
