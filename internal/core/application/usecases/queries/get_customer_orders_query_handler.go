package queries

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history straight
// from the database, newest order first.
//
// Example:
//
//	handler := NewGetCustomerOrdersQueryHandler(db, 10*time.Second)
//	query, _ := NewGetCustomerOrdersQuery(customerID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get customer orders: %v", err)
//	    return err
//	}
type GetCustomerOrdersQueryHandler struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries. Requires a GORM database connection for query execution.
// A non-positive timeout falls back to defaultQueryTimeout.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB, timeout time.Duration) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db, timeout: timeout}
}

// defaultQueryTimeout bounds one read when the caller supplied no deadline
// and no timeout was configured.
const defaultQueryTimeout = 10 * time.Second

// Handle executes the query and returns the customer's orders with their
// lines. Orders are sorted by order number descending, which matches
// creation order because numbers are strictly increasing. An unknown
// customer yields an empty slice, not an error.
//
// The read runs under a deadline; an expiry surfaces as a
// StorageUnavailableError.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := h.ensureDeadline(ctx)
	defer cancel()

	orders, err := h.read(ctx, query.CustomerID())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewStorageUnavailableErrorWithCause("get customer orders", err)
		}
		return nil, err
	}

	return orders, nil
}

// ensureDeadline guarantees the read cannot block indefinitely. A deadline
// supplied by the caller wins.
func (h GetCustomerOrdersQueryHandler) ensureDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	timeout := h.timeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func (h GetCustomerOrdersQueryHandler) read(
	ctx context.Context,
	customerID kernel.UUID,
) ([]GetCustomerOrdersQueryResponse, error) {
	orders, orderIDs, err := h.readOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	linesByOrder, err := h.readLines(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Lines = linesByOrder[orders[i].ID.String()]
	}

	return orders, nil
}

func (h GetCustomerOrdersQueryHandler) readOrders(
	ctx context.Context,
	customerID kernel.UUID,
) ([]GetCustomerOrdersQueryResponse, []uuid.UUID, error) {
	orders := make([]GetCustomerOrdersQueryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			cancelled_by_admin,
			street,
			label,
			delivery_fee,
			total_price
		FROM orders
		WHERE customer_id = ?
		ORDER BY order_number DESC
	`, customerID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCustomerOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&status,
			&orderResp.CancelledByAdmin,
			&orderResp.Street,
			&orderResp.Label,
			&orderResp.DeliveryFee,
			&orderResp.TotalPrice,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()

		orders = append(orders, orderResp)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, orderIDs, nil
}

func (h GetCustomerOrdersQueryHandler) readLines(
	ctx context.Context,
	orderIDs []uuid.UUID,
) (map[string][]OrderLineResponse, error) {
	linesByOrder := make(map[string][]OrderLineResponse)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			l.product_id,
			COALESCE(p.name, ''),
			l.quantity,
			l.size,
			l.color,
			l.original_price,
			l.discount_percent,
			l.discounted_price
		FROM order_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN ?
		ORDER BY l.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var orderID, productID uuid.UUID

		err = rows.Scan(
			&orderID,
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.Size,
			&line.Color,
			&line.OriginalPrice,
			&line.DiscountPercent,
			&line.DiscountedPrice,
		)
		if err != nil {
			return nil, err
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ProductID = lineProductID

		key := orderID.String()
		linesByOrder[key] = append(linesByOrder[key], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return linesByOrder, nil
}
