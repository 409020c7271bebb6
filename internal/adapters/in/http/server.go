package http

import (
	"errors"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/generated/servers"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	items := make([]commands.OrderItem, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id",
			})
		}

		items = append(items, commands.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	label := ""
	if newOrder.Address.Label != nil {
		label = *newOrder.Address.Label
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, items, newOrder.Address.Street, label)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(createdOrder))
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status - moves an
// order to a new status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var statusChange servers.StatusChange
	if err := ctx.Bind(&statusChange); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	newStatus, err := order.StatusFromString(string(statusChange.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	actor, err := order.ActorFromString(string(statusChange.Actor))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid actor: " + err.Error(),
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus, actor)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	result, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderCommandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result.Order))
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders -
// returns the customer's order history, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context, customerId openapi_types.UUID) error {
	customerID, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrStorageUnavailable) {
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "Temporarily unavailable, retry later",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, orderResp := range orders {
		response[i] = queryOrderToResponse(orderResp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderCommandError maps business errors to HTTP status codes.
func (s *Server) orderCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrCustomerIsBanned):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Customer is banned",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStorageUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Temporarily unavailable, retry later",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

// orderToResponse converts an order aggregate to its API representation.
// Product names live on the read side, so command responses leave them empty.
func orderToResponse(aggregate *order.Order) servers.Order {
	lines := make([]servers.OrderLine, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines[i] = servers.OrderLine{
			ProductId:       line.ProductID().Bytes(),
			Quantity:        line.Quantity(),
			Size:            line.Size(),
			Color:           line.Color(),
			OriginalPrice:   line.OriginalPrice(),
			DiscountPercent: line.DiscountPercent(),
			DiscountedPrice: line.DiscountedPrice(),
		}
	}

	label := aggregate.Address().Label()

	return servers.Order{
		Id:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		Status:           servers.OrderStatus(aggregate.Status().String()),
		CancelledByAdmin: aggregate.CancelledByAdmin(),
		Address: servers.Address{
			Street: aggregate.Address().Street(),
			Label:  &label,
		},
		DeliveryFee: aggregate.DeliveryFee(),
		TotalPrice:  aggregate.TotalPrice(),
		Lines:       lines,
	}
}

// queryOrderToResponse converts a read model row to its API representation.
func queryOrderToResponse(orderResp queries.GetCustomerOrdersQueryResponse) servers.Order {
	lines := make([]servers.OrderLine, len(orderResp.Lines))
	for i, line := range orderResp.Lines {
		lines[i] = servers.OrderLine{
			ProductId:       line.ProductID.Bytes(),
			ProductName:     line.ProductName,
			Quantity:        line.Quantity,
			Size:            line.Size,
			Color:           line.Color,
			OriginalPrice:   line.OriginalPrice,
			DiscountPercent: line.DiscountPercent,
			DiscountedPrice: line.DiscountedPrice,
		}
	}

	label := orderResp.Label

	return servers.Order{
		Id:               orderResp.ID.Bytes(),
		OrderNumber:      orderResp.OrderNumber,
		Status:           servers.OrderStatus(orderResp.Status),
		CancelledByAdmin: orderResp.CancelledByAdmin,
		Address: servers.Address{
			Street: orderResp.Street,
			Label:  &label,
		},
		DeliveryFee: orderResp.DeliveryFee,
		TotalPrice:  orderResp.TotalPrice,
		Lines:       lines,
	}
}
