package services

import (
	"context"

	"docledger/internal/application/mapper"
	"docledger/internal/domain/repositories"
)

// CategoryService exposes the static category reference data.
type CategoryService struct {
	categories repositories.CategoryRepository
}

func NewCategoryService(categories repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]*mapper.CategoryResult, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.NewCategoryResults(categories), nil
}
