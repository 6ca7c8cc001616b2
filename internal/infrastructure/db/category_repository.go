package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"docledger/internal/common"
	"docledger/internal/domain/entities"
	"docledger/internal/domain/repositories"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.ValidatedCategory) (*entities.Category, error) {
	model := CategoryModel{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyExists
		}
		return nil, err
	}
	return &entities.Category{ID: model.ID, Name: model.Name}, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entities.Category, error) {
	var model CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &entities.Category{ID: model.ID, Name: model.Name}, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.Category, error) {
	var model CategoryModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &entities.Category{ID: model.ID, Name: model.Name}, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entities.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	categories := make([]*entities.Category, 0, len(models))
	for i := range models {
		categories = append(categories, &entities.Category{ID: models[i].ID, Name: models[i].Name})
	}
	return categories, nil
}
