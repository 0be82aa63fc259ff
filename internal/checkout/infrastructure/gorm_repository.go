package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusmacedo/go-ddd-events/internal/checkout/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

type orderModel struct {
	ID         string           `gorm:"primaryKey"`
	CustomerID string           `gorm:"not null;index"`
	Total      float64          `gorm:"not null"`
	Items      []orderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderModel) TableName() string {
	return "orders"
}

type orderItemModel struct {
	ID        string  `gorm:"primaryKey"`
	OrderID   string  `gorm:"not null;index"`
	ProductID string  `gorm:"not null"`
	Name      string  `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
}

func (orderItemModel) TableName() string {
	return "order_items"
}

type gormOrderRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormOrderRepository(db *gorm.DB, logger application.AppLogger) (domain.OrderRepository, error) {
	if err := db.AutoMigrate(&orderModel{}, &orderItemModel{}); err != nil {
		return nil, err
	}

	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	model := toOrderModel(order)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save order", err, map[string]interface{}{
			"id": order.ID(),
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrOrderExists
		}
		return err
	}

	application.LogInfo(ctx, r.logger, "order saved", map[string]interface{}{
		"id":    order.ID(),
		"total": model.Total,
	})
	return nil
}

// Update substitui os itens e o total do pedido em uma única transação.
func (r *gormOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	model := toOrderModel(order)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&orderModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", model.ID).Delete(&orderItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.Items).Error; err != nil {
			return err
		}
		return tx.Model(&orderModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
			"customer_id": model.CustomerID,
			"total":       model.Total,
		}).Error
	})
	if err != nil {
		application.LogError(ctx, r.logger, "failed to update order", err, map[string]interface{}{
			"id": order.ID(),
		})
		return err
	}

	application.LogInfo(ctx, r.logger, "order updated", map[string]interface{}{
		"id":    order.ID(),
		"total": model.Total,
	})
	return nil
}

func (r *gormOrderRepository) Find(ctx context.Context, id string) (*domain.Order, error) {
	var model orderModel
	err := r.db.WithContext(ctx).Preload("Items", orderItemsByID).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		application.LogError(ctx, r.logger, "failed to find order", err, map[string]interface{}{
			"id": id,
		})
		return nil, err
	}

	return model.toDomain()
}

func (r *gormOrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	var models []orderModel
	if err := r.db.WithContext(ctx).Preload("Items", orderItemsByID).Order("id").Find(&models).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to find orders", err, nil)
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(models))
	for _, model := range models {
		order, err := model.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func toOrderModel(order *domain.Order) orderModel {
	items := order.Items()
	model := orderModel{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
		Items:      make([]orderItemModel, 0, len(items)),
	}
	for _, item := range items {
		model.Items = append(model.Items, orderItemModel{
			ID:        item.ID(),
			OrderID:   order.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}
	return model
}

func (m orderModel) toDomain() (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(m.Items))
	for _, itemModel := range m.Items {
		item, err := domain.NewOrderItem(itemModel.ID, itemModel.Name, itemModel.Price, itemModel.ProductID, itemModel.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.NewOrder(m.ID, m.CustomerID, items)
}
