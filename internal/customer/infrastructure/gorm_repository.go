package infrastructure

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusmacedo/go-ddd-events/internal/customer/domain"
	"github.com/mateusmacedo/go-ddd-events/pkg/application"
)

type customerModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Street       string
	Number       int
	Zip          string
	City         string
	Active       bool `gorm:"not null;default:false"`
	RewardPoints int  `gorm:"not null;default:0"`
}

func (customerModel) TableName() string {
	return "customers"
}

type gormCustomerRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormCustomerRepository(db *gorm.DB, logger application.AppLogger) (domain.CustomerRepository, error) {
	if err := db.AutoMigrate(&customerModel{}); err != nil {
		return nil, err
	}

	return &gormCustomerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	model := toCustomerModel(customer)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to save customer", err, map[string]interface{}{
			"id": customer.ID(),
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCustomerExists
		}
		return err
	}

	application.LogInfo(ctx, r.logger, "customer saved", map[string]interface{}{
		"id": customer.ID(),
	})
	return nil
}

func (r *gormCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	model := toCustomerModel(customer)
	result := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":          model.Name,
		"street":        model.Street,
		"number":        model.Number,
		"zip":           model.Zip,
		"city":          model.City,
		"active":        model.Active,
		"reward_points": model.RewardPoints,
	})
	if result.Error != nil {
		application.LogError(ctx, r.logger, "failed to update customer", result.Error, map[string]interface{}{
			"id": customer.ID(),
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}

	application.LogInfo(ctx, r.logger, "customer updated", map[string]interface{}{
		"id": customer.ID(),
	})
	return nil
}

func (r *gormCustomerRepository) Find(ctx context.Context, id string) (*domain.Customer, error) {
	var model customerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		application.LogError(ctx, r.logger, "failed to find customer", err, map[string]interface{}{
			"id": id,
		})
		return nil, err
	}

	return model.toDomain()
}

func (r *gormCustomerRepository) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	var models []customerModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		application.LogError(ctx, r.logger, "failed to find customers", err, nil)
		return nil, err
	}

	customers := make([]*domain.Customer, 0, len(models))
	for _, model := range models {
		customer, err := model.toDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func toCustomerModel(customer *domain.Customer) customerModel {
	address := customer.Address()
	return customerModel{
		ID:           customer.ID(),
		Name:         customer.Name(),
		Street:       address.Street(),
		Number:       address.Number(),
		Zip:          address.Zip(),
		City:         address.City(),
		Active:       customer.IsActive(),
		RewardPoints: customer.RewardPoints(),
	}
}

func (m customerModel) toDomain() (*domain.Customer, error) {
	var address domain.Address
	if m.Street != "" {
		var err error
		address, err = domain.NewAddress(m.Street, m.Number, m.Zip, m.City)
		if err != nil {
			return nil, err
		}
	}
	return domain.RestoreCustomer(m.ID, m.Name, address, m.Active, m.RewardPoints)
}
