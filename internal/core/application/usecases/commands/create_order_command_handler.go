package commands

import (
	"context"
	"log/slog"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"
)

// CreateOrderCommandHandler places a new order in pending status. Item names
// and prices are snapshotted from the catalog inside the same transaction, so
// a later price change never rewrites an already placed order.
type CreateOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// Handle processes the order placement. Geocoding the delivery address is
// best-effort: a resolver failure is logged and the order is created without
// coordinates.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		prod, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		item, err := order.NewItem(prod.ID(), prod.Name(), prod.Price(), line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.OrderType(), cmd.DeliveryType(), items, 0)
	if err != nil {
		return err
	}

	if cmd.Address() != "" {
		location, geoErr := h.geocoder.Geocode(ctx, cmd.Address())
		if geoErr != nil {
			h.logger.Warn("geocoding failed, creating order without coordinates",
				slog.String("order_id", cmd.OrderID().String()),
				slog.Any("error", geoErr),
			)
		} else if err = o.SetLocation(location); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
