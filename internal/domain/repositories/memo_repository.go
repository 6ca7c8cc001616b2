package repositories

import (
	"context"

	"docledger/internal/domain/entities"
)

type MemoRepository interface {
	Create(ctx context.Context, memo *entities.ValidatedMemo) (*entities.Memo, error)
	FindByID(ctx context.Context, id uint) (*entities.Memo, error)
	// ListByCompany returns every memo filed under the company partition,
	// newest first. An unknown company yields an empty slice, not an error.
	ListByCompany(ctx context.Context, company string) ([]*entities.Memo, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.Memo, error)
	Update(ctx context.Context, memo *entities.ValidatedMemo) (*entities.Memo, error)
	Delete(ctx context.Context, id uint) error
	// CompaniesByUser returns the distinct company names across the user's
	// memos.
	CompaniesByUser(ctx context.Context, userID uint) ([]string, error)
}
