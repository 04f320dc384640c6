package cmd

import (
	"log/slog"

	"pharmacy/internal/adapters/in/http"
	"pharmacy/internal/adapters/out/geo"
	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/adapters/out/postgres/agentrepo"
	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types; each Create method builds a fresh one over the shared
// infrastructure.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	directory  ports.AgentDirectory
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geo.NewClient(config.GeoServiceURL),
		directory:  agentrepo.NewGormAgentDirectory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateReserveStockCommandHandler() commands.ReserveStockCommandHandler {
	return commands.NewReserveStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateReleaseStockCommandHandler() commands.ReleaseStockCommandHandler {
	return commands.NewReleaseStockCommandHandler(c.productUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fulfillmentUoWFactory(), c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartProcessingCommandHandler() commands.StartProcessingCommandHandler {
	return commands.NewStartProcessingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPreparationCommandHandler() commands.ConfirmPreparationCommandHandler {
	return commands.NewConfirmPreparationCommandHandler(c.fulfillmentUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fulfillmentUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.fulfillmentUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	return commands.NewAcceptAssignmentCommandHandler(c.dispatchUoWFactory(), c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRejectAssignmentCommandHandler() commands.RejectAssignmentCommandHandler {
	return commands.NewRejectAssignmentCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAssignmentStatusCommandHandler() commands.UpdateAssignmentStatusCommandHandler {
	return commands.NewUpdateAssignmentStatusCommandHandler(c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateHandoverAssignmentCommandHandler() commands.HandoverAssignmentCommandHandler {
	return commands.NewHandoverAssignmentCommandHandler(c.dispatchUoWFactory(), c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptHandoverCommandHandler() commands.AcceptHandoverCommandHandler {
	return commands.NewAcceptHandoverCommandHandler(c.dispatchUoWFactory(), c.directory, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteAssignmentCommandHandler() commands.DeleteAssignmentCommandHandler {
	return commands.NewDeleteAssignmentCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableAssignmentsQueryHandler() queries.GetAvailableAssignmentsQueryHandler {
	return queries.NewGetAvailableAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentAssignmentsQueryHandler() queries.GetAgentAssignmentsQueryHandler {
	return queries.NewGetAgentAssignmentsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server over every use case handler.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.ServerHandlers{
		ReserveStock:       c.CreateReserveStockCommandHandler(),
		ReleaseStock:       c.CreateReleaseStockCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		ApproveOrder:       c.CreateApproveOrderCommandHandler(),
		StartProcessing:    c.CreateStartProcessingCommandHandler(),
		ConfirmPreparation: c.CreateConfirmPreparationCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		AcceptHandover:     c.CreateAcceptHandoverCommandHandler(),
		AcceptAssignment:   c.CreateAcceptAssignmentCommandHandler(),
		RejectAssignment:   c.CreateRejectAssignmentCommandHandler(),
		UpdateStatus:       c.CreateUpdateAssignmentStatusCommandHandler(),
		Handover:           c.CreateHandoverAssignmentCommandHandler(),
		DeleteAssignment:   c.CreateDeleteAssignmentCommandHandler(),

		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetUncompletedOrders: c.CreateGetUncompletedOrdersQueryHandler(),
		GetAvailable:         c.CreateGetAvailableAssignmentsQueryHandler(),
		GetAgentAssignments:  c.CreateGetAgentAssignmentsQueryHandler(),
	})
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderUoWFactory(), c.CreateCreateAssignmentCommandHandler(), c.logger)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
