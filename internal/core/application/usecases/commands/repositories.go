// Package commands contains the write operations of the fulfillment data service.
// Every handler validates its command, opens a unit of work, and commits only
// when all of its checks pass.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CarrierOfferRepoFactory interface {
		CarrierOfferRepository() ports.CarrierOfferRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// DeliveryUoW reads the order and its offers and writes the delivery in
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   offers, err := uow.CarrierOfferRepository().ListByDestination(ctx, o.Destination())
	//   err = uow.DeliveryRepository().Add(ctx, d)
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		CarrierOfferRepoFactory
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	LineItemUoW interface {
		TxManager
		LineItemRepoFactory
	}

	LineItemUoWFactory interface {
		Create() LineItemUoW
	}
)
