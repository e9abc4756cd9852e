package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmirandam/backoffice-backend/internal/domain/entities"
	"github.com/dmirandam/backoffice-backend/internal/domain/repositories"
)

// CatalogRepository implementa repositories.CatalogRepository.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository crea un nuevo CatalogRepository.
func NewCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, item *entities.CatalogItem) error {
	model := catalogToModel(item)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	item.ID = model.ID
	item.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	item.UpdatedAt = time.Unix(model.UpdatedAt, 0).UTC()
	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uint) (*entities.CatalogItem, error) {
	var model CatalogItemModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return catalogToEntity(&model), nil
}

func (r *CatalogRepository) Update(ctx context.Context, item *entities.CatalogItem) error {
	model := catalogToModel(item)

	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Save(model).Error
}

func (r *CatalogRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Delete(&CatalogItemModel{}, id).Error
}

func (r *CatalogRepository) List(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.CatalogItem, error) {
	var models []*CatalogItemModel

	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&CatalogItemModel{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.OnlyInStock {
		query = query.Where("in_stock = ?", true)
	}

	if err := query.Order("title ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.CatalogItem, 0, len(models))
	for _, model := range models {
		items = append(items, catalogToEntity(model))
	}
	return items, nil
}

// Conversores
func catalogToModel(item *entities.CatalogItem) *CatalogItemModel {
	model := &CatalogItemModel{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Image:       item.Image,
		Rating:      item.Rating,
		Price:       item.Price,
		InStock:     item.InStock,
	}
	if !item.CreatedAt.IsZero() {
		model.CreatedAt = item.CreatedAt.Unix()
	}
	return model
}

func catalogToEntity(model *CatalogItemModel) *entities.CatalogItem {
	return &entities.CatalogItem{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Category:    model.Category,
		Image:       model.Image,
		Rating:      model.Rating,
		Price:       model.Price,
		InStock:     model.InStock,
		CreatedAt:   time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0).UTC(),
	}
}
