package repositories

import (
	"context"

	"docledger/internal/domain/entities"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entities.ValidatedInvoice) (*entities.Invoice, error)
	FindByID(ctx context.Context, id uint) (*entities.Invoice, error)
	ListByCompany(ctx context.Context, company string) ([]*entities.Invoice, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.Invoice, error)
	Update(ctx context.Context, invoice *entities.ValidatedInvoice) (*entities.Invoice, error)
	Delete(ctx context.Context, id uint) error
	CompaniesByUser(ctx context.Context, userID uint) ([]string, error)
}
