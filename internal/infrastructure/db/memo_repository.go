package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"docledger/internal/common"
	"docledger/internal/domain/entities"
	"docledger/internal/domain/repositories"
)

type MemoRepository struct {
	db *gorm.DB
}

func NewMemoRepository(db *gorm.DB) repositories.MemoRepository {
	return &MemoRepository{db: db}
}

func (r *MemoRepository) Create(ctx context.Context, memo *entities.ValidatedMemo) (*entities.Memo, error) {
	entity := memo.GetMemo()
	model := memoModelFromEntity(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyExists
		}
		return nil, err
	}
	return r.FindByID(ctx, model.ID)
}

func (r *MemoRepository) FindByID(ctx context.Context, id uint) (*entities.Memo, error) {
	var model MemoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return memoEntityFromModel(&model), nil
}

func (r *MemoRepository) ListByCompany(ctx context.Context, company string) ([]*entities.Memo, error) {
	var models []MemoModel
	if err := r.db.WithContext(ctx).Where("company = ?", company).Order("id desc").Find(&models).Error; err != nil {
		return nil, err
	}
	return memoEntitiesFromModels(models), nil
}

func (r *MemoRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Memo, error) {
	var models []MemoModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&models).Error; err != nil {
		return nil, err
	}
	return memoEntitiesFromModels(models), nil
}

func (r *MemoRepository) Update(ctx context.Context, memo *entities.ValidatedMemo) (*entities.Memo, error) {
	entity := memo.GetMemo()
	model := memoModelFromEntity(entity)

	res := r.db.WithContext(ctx).Model(&MemoModel{}).Where("id = ?", entity.ID).Updates(map[string]interface{}{
		"title":              model.Title,
		"memo_number":        model.MemoNumber,
		"expiry_date":        model.ExpiryDate,
		"wholesaler_details": model.WholesalerDetails,
		"buyer_details":      model.BuyerDetails,
		"items":              model.Items,
		"total_value":        model.TotalValue,
		"remarks":            model.Remarks,
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

func (r *MemoRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MemoModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MemoRepository) CompaniesByUser(ctx context.Context, userID uint) ([]string, error) {
	var companies []string
	err := r.db.WithContext(ctx).Model(&MemoModel{}).
		Where("user_id = ?", userID).
		Distinct("company").
		Order("company").
		Pluck("company", &companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func memoModelFromEntity(entity *entities.Memo) *MemoModel {
	return &MemoModel{
		ID:                entity.ID,
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
		Title:             entity.Title,
		MemoNumber:        entity.MemoNumber,
		ExpiryDate:        entity.ExpiryDate,
		WholesalerDetails: entity.WholesalerDetails,
		BuyerDetails:      entity.BuyerDetails,
		Items:             entity.Items,
		TotalValue:        entity.TotalValue,
		Remarks:           entity.Remarks,
		Company:           entity.Company,
		UserID:            entity.UserID,
	}
}

func memoEntityFromModel(model *MemoModel) *entities.Memo {
	return &entities.Memo{
		ID:                model.ID,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		Title:             model.Title,
		MemoNumber:        model.MemoNumber,
		ExpiryDate:        model.ExpiryDate,
		WholesalerDetails: model.WholesalerDetails,
		BuyerDetails:      model.BuyerDetails,
		Items:             model.Items,
		TotalValue:        model.TotalValue,
		Remarks:           model.Remarks,
		Company:           model.Company,
		UserID:            model.UserID,
	}
}

func memoEntitiesFromModels(models []MemoModel) []*entities.Memo {
	memos := make([]*entities.Memo, 0, len(models))
	for i := range models {
		memos = append(memos, memoEntityFromModel(&models[i]))
	}
	return memos
}
