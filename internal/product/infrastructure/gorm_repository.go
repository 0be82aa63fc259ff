package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusmacedo/go-ddd-events/internal/product/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

type productModel struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
}

func (productModel) TableName() string {
	return "products"
}

type gormProductRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormProductRepository(db *gorm.DB, logger application.AppLogger) (domain.ProductRepository, error) {
	if err := db.AutoMigrate(&productModel{}); err != nil {
		return nil, err
	}

	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	model := productModel{
		ID:          product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		Price:       product.Price(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save product", err, map[string]interface{}{
			"id": product.ID(),
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProductExists
		}
		return err
	}

	application.LogInfo(ctx, r.logger, "product saved", map[string]interface{}{
		"id": product.ID(),
	})
	return nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *domain.Product) error {
	result := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", product.ID()).Updates(map[string]interface{}{
		"name":        product.Name(),
		"description": product.Description(),
		"price":       product.Price(),
	})
	if result.Error != nil {
		application.LogError(ctx, r.logger, "failed to update product", result.Error, map[string]interface{}{
			"id": product.ID(),
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	application.LogInfo(ctx, r.logger, "product updated", map[string]interface{}{
		"id": product.ID(),
	})
	return nil
}

func (r *gormProductRepository) Find(ctx context.Context, id string) (*domain.Product, error) {
	var model productModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		application.LogError(ctx, r.logger, "failed to find product", err, map[string]interface{}{
			"id": id,
		})
		return nil, err
	}

	return domain.RestoreProduct(model.ID, model.Name, model.Description, model.Price)
}

func (r *gormProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	var models []productModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to find products", err, nil)
		return nil, err
	}

	products := make([]*domain.Product, 0, len(models))
	for _, model := range models {
		product, err := domain.RestoreProduct(model.ID, model.Name, model.Description, model.Price)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
