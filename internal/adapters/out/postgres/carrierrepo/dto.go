// Package carrierrepo maps carrier offers to the carrier_offers table.
package carrierrepo

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarrierOfferDTO is one row of the offer catalogue. Name, price and transit
// time are nullable: the catalogue is fed by carriers and may be incomplete.
// Seq keeps insertion order, which decides ranking ties.
type CarrierOfferDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Seq         int64               `gorm:"autoIncrement;uniqueIndex"`
	CarrierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	CarrierName *string             `gorm:"size:255"`
	Price       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	TransitDays *int
	Country     string `gorm:"size:2;not null;index"`
}

func (CarrierOfferDTO) TableName() string {
	return "carrier_offers"
}

func fromDomain(offer carrier.Offer) CarrierOfferDTO {
	dto := CarrierOfferDTO{
		ID:        uuid.New(),
		CarrierID: offer.CarrierID().Raw(),
		Country:   offer.Destination().String(),
	}
	if name := offer.Name(); name != "" {
		dto.CarrierName = &name
	}
	if price, ok := offer.Price(); ok {
		dto.Price = decimal.NewNullDecimal(price)
	}
	if days, ok := offer.TransitDays(); ok {
		dto.TransitDays = &days
	}
	return dto
}

// toDomain rebuilds an offer from its row.
func toDomain(dto CarrierOfferDTO) (carrier.Offer, error) {
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return carrier.Offer{}, err
	}
	country, err := kernel.NewCountry(dto.Country)
	if err != nil {
		return carrier.Offer{}, err
	}

	var name string
	if dto.CarrierName != nil {
		name = *dto.CarrierName
	}

	return carrier.RestoreOffer(carrierID, name, dto.Price, dto.TransitDays, country)
}
