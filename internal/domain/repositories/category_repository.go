package repositories

import (
	"context"

	"docledger/internal/domain/entities"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entities.ValidatedCategory) (*entities.Category, error)
	FindByID(ctx context.Context, id uint) (*entities.Category, error)
	FindByName(ctx context.Context, name string) (*entities.Category, error)
	List(ctx context.Context) ([]*entities.Category, error)
}
