// Package validation содержит функции валидации входных данных.
package validation

import (
	"errors"
	"strings"

	"github.com/mmeshcher/shopstate/internal/model"
)

var (
	// ErrNameRequired возвращается для пустого названия товара.
	ErrNameRequired = errors.New("product name is required")
	// ErrDescriptionRequired возвращается для пустого описания.
	ErrDescriptionRequired = errors.New("product description is required")
	// ErrInvalidPrice возвращается для цены вне диапазона (0, model.MaxPrice].
	ErrInvalidPrice = errors.New("price must be positive and not above the limit")
	// ErrInvalidQuantity возвращается для количества вне диапазона [1, model.MaxQuantity].
	ErrInvalidQuantity = errors.New("quantity must be positive and not above the limit")
	// ErrUnknownCategory возвращается для категории вне известного набора.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDeliveryRequired возвращается для пустого способа доставки.
	ErrDeliveryRequired = errors.New("delivery method is required")
)

// IsValidFilterCategory проверяет категорию фильтра каталога; Home допустима.
func IsValidFilterCategory(category string) bool {
	return model.IsKnownCategory(category)
}

// IsValidProductCategory проверяет категорию товара; Home товару назначить нельзя.
func IsValidProductCategory(category string) bool {
	return category != model.CategoryAll && model.IsKnownCategory(category)
}

// ValidateProductDraft проверяет форму добавления товара и возвращает первую ошибку.
func ValidateProductDraft(d model.ProductDraft) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return ErrNameRequired
	case strings.TrimSpace(d.Description) == "":
		return ErrDescriptionRequired
	case !model.IsValidPrice(d.Price):
		return ErrInvalidPrice
	case d.Quantity <= 0 || d.Quantity > model.MaxQuantity:
		return ErrInvalidQuantity
	case !IsValidProductCategory(d.Category):
		return ErrUnknownCategory
	case strings.TrimSpace(d.DeliveryMethod) == "":
		return ErrDeliveryRequired
	}
	return nil
}
