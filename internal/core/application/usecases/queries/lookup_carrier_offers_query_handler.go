package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"

	"gorm.io/gorm"
)

type LookupCarrierOffersQueryHandler struct {
	db *gorm.DB
}

func NewLookupCarrierOffersQueryHandler(db *gorm.DB) LookupCarrierOffersQueryHandler {
	return LookupCarrierOffersQueryHandler{db: db}
}

// Handle returns the destination's offers in catalogue order, incomplete ones
// included. Ranking decides what to do with them.
func (h LookupCarrierOffersQueryHandler) Handle(
	ctx context.Context,
	query LookupCarrierOffersQuery,
) ([]carrier.Offer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []offerRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			carrier_id,
			carrier_name,
			price,
			transit_days,
			country
		FROM carrier_offers
		WHERE country = ?
		ORDER BY seq
	`, query.Destination().String()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	offers := make([]carrier.Offer, 0, len(rows))
	for _, row := range rows {
		offer, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}
