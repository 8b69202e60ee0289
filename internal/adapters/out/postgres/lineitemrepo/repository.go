package lineitemrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineItemRepository implements ports.LineItemRepository using GORM.
type GormLineItemRepository struct {
	db *gorm.DB
}

func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

func (r *GormLineItemRepository) Add(ctx context.Context, item *lineitem.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormLineItemRepository) Get(ctx context.Context, id kernel.UUID) (*lineitem.LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lineItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLineItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LineItemDTO{}, "id = ?", id.Raw())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lineItem", id.String())
	}
	return nil
}

func (r *GormLineItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*lineitem.LineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Raw()).
		Order("product_name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*lineitem.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
