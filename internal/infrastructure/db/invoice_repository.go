package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"docledger/internal/common"
	"docledger/internal/domain/entities"
	"docledger/internal/domain/repositories"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) repositories.InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *entities.ValidatedInvoice) (*entities.Invoice, error) {
	entity := invoice.GetInvoice()
	model := invoiceModelFromEntity(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyExists
		}
		return nil, err
	}
	return r.FindByID(ctx, model.ID)
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (*entities.Invoice, error) {
	var model InvoiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return invoiceEntityFromModel(&model), nil
}

func (r *InvoiceRepository) ListByCompany(ctx context.Context, company string) ([]*entities.Invoice, error) {
	var models []InvoiceModel
	if err := r.db.WithContext(ctx).Where("company = ?", company).Order("id desc").Find(&models).Error; err != nil {
		return nil, err
	}
	return invoiceEntitiesFromModels(models), nil
}

func (r *InvoiceRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Invoice, error) {
	var models []InvoiceModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&models).Error; err != nil {
		return nil, err
	}
	return invoiceEntitiesFromModels(models), nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *entities.ValidatedInvoice) (*entities.Invoice, error) {
	entity := invoice.GetInvoice()
	model := invoiceModelFromEntity(entity)

	res := r.db.WithContext(ctx).Model(&InvoiceModel{}).Where("id = ?", entity.ID).Updates(map[string]interface{}{
		"title":              model.Title,
		"invoice_number":     model.InvoiceNumber,
		"wholesaler_details": model.WholesalerDetails,
		"buyer_details":      model.BuyerDetails,
		"items":              model.Items,
		"total_value":        model.TotalValue,
		"company":            model.Company,
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyExists
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, common.ErrNotFound
	}
	return r.FindByID(ctx, entity.ID)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&InvoiceModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) CompaniesByUser(ctx context.Context, userID uint) ([]string, error) {
	var companies []string
	err := r.db.WithContext(ctx).Model(&InvoiceModel{}).
		Where("user_id = ?", userID).
		Distinct("company").
		Order("company").
		Pluck("company", &companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func invoiceModelFromEntity(entity *entities.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:                entity.ID,
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
		Title:             entity.Title,
		InvoiceNumber:     entity.InvoiceNumber,
		WholesalerDetails: entity.WholesalerDetails,
		BuyerDetails:      entity.BuyerDetails,
		Items:             entity.Items,
		TotalValue:        entity.TotalValue,
		Company:           entity.Company,
		UserID:            entity.UserID,
	}
}

func invoiceEntityFromModel(model *InvoiceModel) *entities.Invoice {
	return &entities.Invoice{
		ID:                model.ID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		Title:             model.Title,
		InvoiceNumber:     model.InvoiceNumber,
		WholesalerDetails: model.WholesalerDetails,
		BuyerDetails:      model.BuyerDetails,
		Items:             model.Items,
		TotalValue:        model.TotalValue,
		Company:           model.Company,
		UserID:            model.UserID,
	}
}

func invoiceEntitiesFromModels(models []InvoiceModel) []*entities.Invoice {
	invoices := make([]*entities.Invoice, 0, len(models))
	for i := range models {
		invoices = append(invoices, invoiceEntityFromModel(&models[i]))
	}
	return invoices
}
