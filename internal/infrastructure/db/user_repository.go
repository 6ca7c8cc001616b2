package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"docledger/internal/common"
	"docledger/internal/domain/entities"
	"docledger/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	entity := user.GetUser()

	model := UserModel{
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
		Name:       entity.Name,
		Lastname:   entity.Lastname,
		Username:   entity.Username,
		Password:   entity.Password,
		CategoryID: entity.CategoryID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyExists
		}
		return nil, err
	}
	return r.FindByID(ctx, model.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return r.mapToEntity(&model), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return r.mapToEntity(&model), nil
}

// Delete removes the user together with its memos and invoices in one
// transaction. The cascade is explicit so it holds on engines where the
// foreign-key pragma is off.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&UserModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrNotFound
		}
		if err := tx.Where("user_id = ?", id).Delete(&MemoModel{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", id).Delete(&InvoiceModel{}).Error
	})
}

func (r *UserRepository) mapToEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:         model.ID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		Name:       model.Name,
		Lastname:   model.Lastname,
		Username:   model.Username,
		Password:   model.Password,
		CategoryID: model.CategoryID,
	}
}
