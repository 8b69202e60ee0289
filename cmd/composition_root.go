package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/in/pgnotify"
	"fulfillment/internal/adapters/out/gateway"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/fulfillment"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	gateway  *gateway.LocalGateway
	registry *fulfillment.Registry
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
	c.gateway = c.CreateLocalGateway()
	c.registry = fulfillment.NewRegistry(c.gateway, c.gateway, logger,
		fulfillment.WithLaunchTimeout(config.LaunchTimeout),
		fulfillment.WithLookupTimeout(config.LookupTimeout),
		fulfillment.WithRefreshTimeout(config.RefreshTimeout),
	)
	return c
}

func (c *CompositionRoot) Registry() *fulfillment.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateDeleteLineItemCommandHandler() commands.DeleteLineItemCommandHandler {
	var f commands.LineItemUoWFactory = FuncLineItemUoWFactory(func() commands.LineItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateFindOversoldOrdersQueryHandler() queries.FindOversoldOrdersQueryHandler {
	return queries.NewFindOversoldOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLocalGateway() *gateway.LocalGateway {
	return gateway.NewLocalGateway(gateway.Handlers{
		LookupCarrierOffers: queries.NewLookupCarrierOffersQueryHandler(c.gormDB),
		CreateDelivery:      c.CreateCreateDeliveryCommandHandler(),
		ListDeliveries:      queries.NewListDeliveriesQueryHandler(c.gormDB),
		GetDeliveryStatus:   queries.NewGetDeliveryStatusQueryHandler(c.gormDB),
		ListLineItems:       queries.NewListLineItemsQueryHandler(c.gormDB),
		DeleteLineItem:      c.CreateDeleteLineItemCommandHandler(),
		GetOrder:            queries.NewGetOrderQueryHandler(c.gormDB),
	})
}

func (c *CompositionRoot) CreateListener() *pgnotify.Listener {
	return pgnotify.NewListener(c.config.DSN(), c.registry, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.registry, c.CreateFindOversoldOrdersQueryHandler(), jobs.Schedules{
		StatusRefresh:   c.config.StatusRefreshSchedule,
		OversellAudit:   c.config.OversellAuditSchedule,
		SessionEviction: c.config.SessionEvictionSchedule,
		SessionIdleTTL:  c.config.SessionIdleTTL,
	}, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.gateway, c.registry)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncLineItemUoWFactory func() commands.LineItemUoW

func (f FuncLineItemUoWFactory) Create() commands.LineItemUoW {
	return f()
}
