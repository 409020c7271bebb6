package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// ErrCustomerIsBanned is returned when a banned customer attempts to place
// an order.
var ErrCustomerIsBanned = errors.New("customer is banned from placing orders")

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves the cart against the catalog, freezes price snapshots, allocates
// the next order number, and persists the order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequences, pricing, logger, 10*time.Second)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items, "456 Oak Avenue", "")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created carries the allocated number and computed totals
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	sequences  ports.SequenceAllocator
	pricing    services.PricingService
	timeout    time.Duration
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CreateOrderUoWFactory for transactional persistence, a
// SequenceAllocator for order numbers, and the pricing service. A
// non-positive timeout falls back to DefaultOperationTimeout.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	sequences ports.SequenceAllocator,
	pricing services.PricingService,
	logger *slog.Logger,
	timeout time.Duration,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequences:  sequences,
		pricing:    pricing,
		timeout:    timeout,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order placement command and returns the created
// order.
//
// The flow:
//  1. Load the customer and reject banned customers.
//  2. Load the referenced products and price the cart; an unknown product
//     aborts the whole order.
//  3. Allocate the next order number.
//  4. Persist the order with its lines atomically.
//  5. Enqueue the order-created notification, best effort.
//
// The order number is allocated outside the storage transaction, so a
// placement that fails after allocation leaves a gap in the numbering.
//
// The whole operation runs under a deadline; an expiry surfaces as a
// StorageUnavailableError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := ensureDeadline(ctx, h.timeout)
	defer cancel()

	created, err := h.placeOrder(ctx, cmd)
	if err != nil {
		return nil, mapDeadline("create order", err)
	}

	return created, nil
}

// placeOrder runs the placement flow on the deadline-bearing context.
func (h *CreateOrderCommandHandler) placeOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if buyer.IsBanned() {
		return nil, ErrCustomerIsBanned
	}

	items := cmd.Items()
	catalog, err := h.loadCatalog(ctx, uow.ProductRepository(), items)
	if err != nil {
		return nil, err
	}

	cartItems := make([]services.CartItem, 0, len(items))
	for _, item := range items {
		cartItems = append(cartItems, services.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	pricedCart, err := h.pricing.PriceCart(cartItems, catalog)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(cmd.Street(), cmd.Label())
	if err != nil {
		return nil, err
	}

	orderNumber, err := h.sequences.Next(ctx, ports.OrderNumberSequence)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		orderNumber,
		pricedCart.Lines,
		address,
		pricedCart.DeliveryFee,
		pricedCart.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.enqueueCreatedNotification(ctx, uow, newOrder)

	return newOrder, nil
}

// enqueueCreatedNotification writes the order-created outbox row after the
// order is committed. The write runs outside the transaction and is best
// effort: a failure loses one push, never the order.
func (h *CreateOrderCommandHandler) enqueueCreatedNotification(
	ctx context.Context,
	uow CreateOrderUoW,
	newOrder *order.Order,
) {
	queued, err := notification.NewNotification(
		kernel.NewUUID(),
		newOrder.CustomerID(),
		newOrder.ID(),
		newOrder.OrderNumber(),
		newOrder.Status(),
	)
	if err == nil {
		err = uow.NotificationRepository().Add(ctx, queued)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to enqueue order created notification",
			"order_id", newOrder.ID().String(),
			"error", err,
		)
	}
}

// loadCatalog fetches the referenced products in one round trip and keys
// them by ID for the pricing service.
func (h *CreateOrderCommandHandler) loadCatalog(
	ctx context.Context,
	products ports.ProductRepository,
	items []OrderItem,
) (map[kernel.UUID]*product.Product, error) {
	ids := make([]kernel.UUID, 0, len(items))
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	found, err := products.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	catalog := make(map[kernel.UUID]*product.Product, len(found))
	for _, p := range found {
		catalog[p.ID()] = p
	}

	return catalog, nil
}
