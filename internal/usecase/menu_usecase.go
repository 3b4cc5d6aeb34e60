package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodie/internal/domain/model"
	repo "foodie/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// MenuUsecase は /api/menu の業務ロジック。
type MenuUsecase struct {
	menuRepo repo.MenuRepository
}

// DI
func NewMenuUsecase(menuRepo repo.MenuRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

type AddMenuItemInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Image       string
}

// メニュー全件
func (u *MenuUsecase) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuRepo.List(ctx)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// メニュー追加（店主操作）。nameとpriceは必須。
func (u *MenuUsecase) Add(ctx context.Context, in AddMenuItemInput) (model.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price.IsNegative() {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	item, err := u.menuRepo.Create(ctx, model.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// メニュー削除（店主操作）
func (u *MenuUsecase) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.menuRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
