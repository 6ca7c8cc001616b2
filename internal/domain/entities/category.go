package entities

import (
	"strings"

	"docledger/internal/common"
)

// Category is static reference data classifying a user, e.g. "Wholesale".
type Category struct {
	ID   uint
	Name string
}

func NewCategory(name string) *Category {
	return &Category{Name: name}
}

func (c *Category) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return common.NewValidationError("name", "must not be empty")
	}
	return nil
}

type ValidatedCategory struct {
	*Category
}

func NewValidatedCategory(category *Category) (*ValidatedCategory, error) {
	if err := category.validate(); err != nil {
		return nil, err
	}
	return &ValidatedCategory{Category: category}, nil
}
