package http

import (
	"errors"
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/generated/servers"
	"pharmacy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Machine-readable error codes returned in response bodies. Both conflict
// variants map to 409; the code tells them apart.
const (
	codeValidationError   = "validation_error"
	codeNotFound          = "not_found"
	codeConflict          = "conflict"
	codeInsufficientStock = "insufficient_stock"
	codeInvalidTransition = "invalid_transition"
	codeInternalError     = "internal_error"
)

// Server implements the generated ServerInterface. It translates HTTP
// requests into commands and queries and maps domain errors onto statuses.
type Server struct {
	reserveStockHandler       commands.ReserveStockCommandHandler
	releaseStockHandler       commands.ReleaseStockCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	approveOrderHandler       commands.ApproveOrderCommandHandler
	startProcessingHandler    commands.StartProcessingCommandHandler
	confirmPreparationHandler commands.ConfirmPreparationCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	acceptHandoverHandler     commands.AcceptHandoverCommandHandler
	acceptAssignmentHandler   commands.AcceptAssignmentCommandHandler
	rejectAssignmentHandler   commands.RejectAssignmentCommandHandler
	updateStatusHandler       commands.UpdateAssignmentStatusCommandHandler
	handoverHandler           commands.HandoverAssignmentCommandHandler
	deleteAssignmentHandler   commands.DeleteAssignmentCommandHandler

	getOrderHandler             queries.GetOrderQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getAvailableHandler         queries.GetAvailableAssignmentsQueryHandler
	getAgentAssignmentsHandler  queries.GetAgentAssignmentsQueryHandler
}

// ServerHandlers bundles every use case handler the HTTP server needs.
type ServerHandlers struct {
	ReserveStock       commands.ReserveStockCommandHandler
	ReleaseStock       commands.ReleaseStockCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	ApproveOrder       commands.ApproveOrderCommandHandler
	StartProcessing    commands.StartProcessingCommandHandler
	ConfirmPreparation commands.ConfirmPreparationCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	AcceptHandover     commands.AcceptHandoverCommandHandler
	AcceptAssignment   commands.AcceptAssignmentCommandHandler
	RejectAssignment   commands.RejectAssignmentCommandHandler
	UpdateStatus       commands.UpdateAssignmentStatusCommandHandler
	Handover           commands.HandoverAssignmentCommandHandler
	DeleteAssignment   commands.DeleteAssignmentCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	GetUncompletedOrders queries.GetUncompletedOrdersQueryHandler
	GetAvailable         queries.GetAvailableAssignmentsQueryHandler
	GetAgentAssignments  queries.GetAgentAssignmentsQueryHandler
}

// NewServer creates the HTTP server from its use case handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		reserveStockHandler:         handlers.ReserveStock,
		releaseStockHandler:         handlers.ReleaseStock,
		createOrderHandler:          handlers.CreateOrder,
		approveOrderHandler:         handlers.ApproveOrder,
		startProcessingHandler:      handlers.StartProcessing,
		confirmPreparationHandler:   handlers.ConfirmPreparation,
		cancelOrderHandler:          handlers.CancelOrder,
		deleteOrderHandler:          handlers.DeleteOrder,
		acceptHandoverHandler:       handlers.AcceptHandover,
		acceptAssignmentHandler:     handlers.AcceptAssignment,
		rejectAssignmentHandler:     handlers.RejectAssignment,
		updateStatusHandler:         handlers.UpdateStatus,
		handoverHandler:             handlers.Handover,
		deleteAssignmentHandler:     handlers.DeleteAssignment,
		getOrderHandler:             handlers.GetOrder,
		getUncompletedOrdersHandler: handlers.GetUncompletedOrders,
		getAvailableHandler:         handlers.GetAvailable,
		getAgentAssignmentsHandler:  handlers.GetAgentAssignments,
	}
}

// ReserveStock handles POST /products/{productId}/reserve.
func (s *Server) ReserveStock(ctx echo.Context, productId openapi_types.UUID) error {
	var body servers.StockRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReserveStockCommand(productID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.reserveStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseStock handles POST /products/{productId}/release.
func (s *Server) ReleaseStock(ctx echo.Context, productId openapi_types.UUID) error {
	var body servers.StockRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReleaseStockCommand(productID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.releaseStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /orders. The order identifier is generated server
// side and returned so the client can poll the order afterwards.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, line := range body.Items {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductId[:])
		if lineErr != nil {
			return badRequest(ctx, lineErr.Error())
		}
		items = append(items, commands.ItemInput{ProductID: productID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	address := ""
	if body.Address != nil {
		address = *body.Address
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		order.Type(body.OrderType),
		order.DeliveryType(body.DeliveryType),
		items,
		address,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetUncompletedOrders handles GET /orders/uncompleted.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.UncompletedOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.UncompletedOrder{
			Id:           o.ID.Bytes(),
			CustomerId:   o.CustomerID.Bytes(),
			Status:       o.Status,
			DeliveryType: o.DeliveryType,
			Total:        o.Total,
			AgentId:      optionalID(o.AgentID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			ProductId:  item.ProductID.Bytes(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
			OutOfStock: item.OutOfStock,
			Committed:  item.Committed,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:            o.ID.Bytes(),
		CustomerId:    o.CustomerID.Bytes(),
		OrderType:     o.OrderType,
		DeliveryType:  o.DeliveryType,
		Status:        o.Status,
		Total:         o.Total,
		AgentId:       optionalID(o.AgentID),
		AssignmentId:  optionalID(o.AssignmentID),
		FailureReason: optionalString(o.FailureReason),
		Items:         items,
	})
}

// DeleteOrder handles DELETE /orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /orders/{orderId}/approve.
func (s *Server) ApproveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartProcessing handles POST /orders/{orderId}/start-processing.
func (s *Server) StartProcessing(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartProcessingCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.startProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPreparation handles POST /orders/{orderId}/confirm-preparation.
// Lines that could not be committed are reported back, not treated as a
// request failure.
func (s *Server) ConfirmPreparation(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewConfirmPreparationCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.confirmPreparationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	failures := make([]servers.ItemFailure, len(result.ItemFailures))
	for i, f := range result.ItemFailures {
		failures[i] = servers.ItemFailure{
			ProductId: f.ProductID.Bytes(),
			Reason:    f.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, servers.PreparationResult{ItemFailures: failures})
}

// CancelOrder handles POST /orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptHandover handles POST /orders/{orderId}/accept-handover.
func (s *Server) AcceptHandover(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AgentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	agentID, err := kernel.UUIDFromBytes(body.AgentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptHandoverCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableAssignments handles GET /assignments/available.
func (s *Server) GetAvailableAssignments(ctx echo.Context) error {
	query := queries.NewGetAvailableAssignmentsQuery()

	assignments, err := s.getAvailableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.AvailableAssignment, len(assignments))
	for i, a := range assignments {
		response[i] = servers.AvailableAssignment{
			Id:             a.ID.Bytes(),
			OrderId:        a.OrderID.Bytes(),
			Status:         a.Status,
			IsHandover:     a.IsHandover,
			HandoverReason: optionalString(a.HandoverReason),
			CreatedAt:      a.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentAssignments handles GET /agents/{agentId}/assignments.
func (s *Server) GetAgentAssignments(
	ctx echo.Context,
	agentId openapi_types.UUID,
	params servers.GetAgentAssignmentsParams,
) error {
	agentID, err := kernel.UUIDFromBytes(agentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	completedOnly := params.Completed != nil && *params.Completed

	query, err := queries.NewGetAgentAssignmentsQuery(agentID, completedOnly)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	assignments, err := s.getAgentAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.AgentAssignment, len(assignments))
	for i, a := range assignments {
		response[i] = servers.AgentAssignment{
			Id:          a.ID.Bytes(),
			OrderId:     a.OrderID.Bytes(),
			Status:      a.Status,
			Notes:       optionalString(a.Notes),
			AssignedAt:  a.AssignedAt,
			PickedUpAt:  a.PickedUpAt,
			DeliveredAt: a.DeliveredAt,
			FailedAt:    a.FailedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptAssignment handles POST /assignments/{assignmentId}/accept.
func (s *Server) AcceptAssignment(ctx echo.Context, assignmentId openapi_types.UUID) error {
	var body servers.AgentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	assignmentID, err := kernel.UUIDFromBytes(assignmentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	agentID, err := kernel.UUIDFromBytes(body.AgentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptAssignmentCommand(assignmentID, agentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectAssignment handles POST /assignments/{assignmentId}/reject.
func (s *Server) RejectAssignment(ctx echo.Context, assignmentId openapi_types.UUID) error {
	var body servers.RejectRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	assignmentID, err := kernel.UUIDFromBytes(assignmentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	agentID, err := kernel.UUIDFromBytes(body.AgentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewRejectAssignmentCommand(assignmentID, agentID, notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rejectAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAssignmentStatus handles POST /assignments/{assignmentId}/status.
func (s *Server) UpdateAssignmentStatus(ctx echo.Context, assignmentId openapi_types.UUID) error {
	var body servers.StatusUpdateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	assignmentID, err := kernel.UUIDFromBytes(assignmentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	agentID, err := kernel.UUIDFromBytes(body.AgentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := dispatch.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewUpdateAssignmentStatusCommand(assignmentID, agentID, target, notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HandoverAssignment handles POST /assignments/{assignmentId}/handover.
func (s *Server) HandoverAssignment(ctx echo.Context, assignmentId openapi_types.UUID) error {
	var body servers.HandoverRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	assignmentID, err := kernel.UUIDFromBytes(assignmentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	fromAgentID, err := kernel.UUIDFromBytes(body.FromAgentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var toAgentID *kernel.UUID
	if body.ToAgentId != nil {
		target, targetErr := kernel.UUIDFromBytes(body.ToAgentId[:])
		if targetErr != nil {
			return badRequest(ctx, targetErr.Error())
		}
		toAgentID = &target
	}

	details := ""
	if body.Details != nil {
		details = *body.Details
	}

	cmd, err := commands.NewHandoverAssignmentCommand(assignmentID, fromAgentID, toAgentID, body.Reason, details)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAssignment handles DELETE /assignments/{assignmentId}.
func (s *Server) DeleteAssignment(ctx echo.Context, assignmentId openapi_types.UUID) error {
	assignmentID, err := kernel.UUIDFromBytes(assignmentId[:])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeleteAssignmentCommand(assignmentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps a use case error onto an HTTP status and error body.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    codeValidationError,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    codeNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInsufficientStock):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    codeInsufficientStock,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    codeConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    codeInvalidTransition,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    codeInternalError,
			Message: "internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    codeValidationError,
		Message: message,
	})
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
