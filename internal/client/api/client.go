// Package api はバックエンドのREST APIを叩くクライアント。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodie/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Client はREST APIのクライアント。
// Tokenがセットされていれば更新系にBearerとして付ける。無くてもそのまま送る。
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// SetToken はセッショントークンを差し替える。空文字で未認証に戻る。
func (c *Client) SetToken(token string) {
	c.Token = token
}

type PendingOrder struct {
	ID         int64           `json:"id"`
	CustomerID *int64          `json:"customer_id"`
	Customer   string          `json:"customer"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type OrderLine struct {
	MenuItemID int64           `json:"menu_item_id"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type PlaceOrderRequest struct {
	CustomerID *int64          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	Items      []OrderLine     `json:"items"`
}

type placeOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Error string `json:"error"`
}

// GET /api/menu
func (c *Client) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	var out []model.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// POST /api/menu
func (c *Client) AddMenuItem(ctx context.Context, name string, price decimal.Decimal, description string) (model.MenuItem, error) {
	req := map[string]interface{}{
		"name":        name,
		"price":       price,
		"description": description,
	}

	var out model.MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/menu", req, &out); err != nil {
		return model.MenuItem{}, err
	}
	return out, nil
}

// DELETE /api/menu/{id}
func (c *Client) RemoveMenuItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/menu/%d", id), nil, nil)
}

// GET /api/messages
func (c *Client) ListMessages(ctx context.Context) ([]model.Message, error) {
	var out []model.Message
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// POST /api/messages
func (c *Client) SendMessage(ctx context.Context, fromUser, toUser, text string) (model.Message, error) {
	req := map[string]string{
		"from_user": fromUser,
		"to_user":   toUser,
		"text":      text,
	}

	var out model.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", req, &out); err != nil {
		return model.Message{}, err
	}
	return out, nil
}

// GET /api/notifications
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GET /api/orders
func (c *Client) ListPendingOrders(ctx context.Context) ([]PendingOrder, error) {
	var out []PendingOrder
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// POST /api/orders。採番されたorder_idを返す。
func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	var out placeOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

// GET /api/orders/{id}/items
func (c *Client) ListOrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var out []model.OrderItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d/items", orderID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PATCH /api/orders/{id}
func (c *Client) MarkOrderReady(ctx context.Context, id int64) error {
	req := map[string]string{"status": string(model.OrderStatusReady)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d", id), req, nil)
}

// POST /api/auth/login
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	req := map[string]string{
		"username": username,
		"password": password,
	}

	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

// doはJSONリクエストを投げてJSONレスポンスをoutへ読む。
// 2xx以外はエラー扱い（bodyのerrorメッセージがあれば載せる）。
func (c *Client) do(ctx context.Context, method, path string, in interface{}, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&e)
		if e.Error != "" {
			return fmt.Errorf("%s %s: %d: %s", method, path, res.StatusCode, e.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
