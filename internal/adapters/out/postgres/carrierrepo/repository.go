package carrierrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierOfferRepository implements ports.CarrierOfferRepository using GORM.
type GormCarrierOfferRepository struct {
	db *gorm.DB
}

func NewGormCarrierOfferRepository(db *gorm.DB) *GormCarrierOfferRepository {
	return &GormCarrierOfferRepository{db: db}
}

// Add appends an offer to the catalogue of its destination.
func (r *GormCarrierOfferRepository) Add(ctx context.Context, offer carrier.Offer) error {
	if offer.IsZero() {
		return errs.NewValueIsRequiredError("offer")
	}

	dto := fromDomain(offer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByDestination returns the destination's offers in insertion order.
func (r *GormCarrierOfferRepository) ListByDestination(
	ctx context.Context,
	destination kernel.Country,
) ([]carrier.Offer, error) {
	if destination.IsZero() {
		return nil, errs.NewValueIsRequiredError("destination")
	}

	var dtos []CarrierOfferDTO
	if err := r.db.WithContext(ctx).
		Where("country = ?", destination.String()).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	offers := make([]carrier.Offer, 0, len(dtos))
	for _, dto := range dtos {
		offer, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}
