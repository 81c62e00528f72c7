package ordering

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
)

// OrderService handles order lifecycle operations
type OrderService struct {
	orderRepo   ordering.OrderRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo ordering.OrderRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// PlaceOrder creates a new order from the requested product lines.
// Product name and unit price are snapshotted from the catalog, and
// stock is reduced per line.
func (s *OrderService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*ordering.Order, error) {
	if len(input.Lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one line")
	}

	order, err := ordering.NewOrder(input.UserID, input.ShippingAddress)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(input.Lines))
	for _, line := range input.Lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load products for order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}

	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, line := range input.Lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found: "+line.ProductID.String())
		}
		if !product.Active {
			return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available: "+product.Name)
		}
		if err := product.ReduceStock(line.Quantity); err != nil {
			return nil, err
		}
		if err := order.AddLine(product.ID, product.Name, product.Price, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.logger.Error("Failed to save order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to place order")
	}

	for _, product := range byID {
		if err := s.productRepo.Save(ctx, product); err != nil {
			s.logger.Error("Failed to persist stock reduction",
				zap.String("product_id", product.ID.String()),
				zap.Error(err))
		}
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.Int("lines", len(order.Lines)),
		zap.String("total", order.TotalAmount.String()))

	return order, nil
}

// GetOrder returns a single order. Customers may only see their own
// orders; admins may see any.
func (s *OrderService) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, shared.NewDomainError("FORBIDDEN", "Access to this order is forbidden")
	}
	return order, nil
}

// ListUserOrders returns a page of the user's own orders
func (s *OrderService) ListUserOrders(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	return s.orderRepo.FindByUser(ctx, userID, filter)
}

// ListAllOrders returns a page of all orders
func (s *OrderService) ListAllOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[ordering.Order], error) {
	return s.orderRepo.FindAll(ctx, filter)
}

// CancelOrder cancels an order and restores product stock. Customers
// may only cancel their own orders.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, shared.NewDomainError("FORBIDDEN", "Access to this order is forbidden")
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.logger.Error("Failed to save cancelled order", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel order")
	}

	s.restoreStock(ctx, order)

	s.logger.Info("Order cancelled", zap.String("order_id", order.ID.String()))
	return order, nil
}

// UpdateOrderStatus moves an order along its lifecycle. Admin only;
// the handler enforces the role.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status ordering.OrderStatus) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
	}

	wasCancelled := order.Cancelled
	if err := order.UpdateStatus(status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.logger.Error("Failed to save order status", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order status")
	}

	if order.Cancelled && !wasCancelled {
		s.restoreStock(ctx, order)
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", order.Status.String()))
	return order, nil
}

// restoreStock puts the cancelled order's quantities back into the
// catalog. Failures are logged, not returned: the cancellation itself
// has already been persisted.
func (s *OrderService) restoreStock(ctx context.Context, order *ordering.Order) {
	for _, line := range order.Lines {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			s.logger.Warn("Cannot restore stock for missing product",
				zap.String("product_id", line.ProductID.String()))
			continue
		}
		if err := product.SetStock(product.Stock + line.Quantity); err != nil {
			s.logger.Error("Failed to restore stock", zap.Error(err))
			continue
		}
		if err := s.productRepo.Save(ctx, product); err != nil {
			s.logger.Error("Failed to persist restored stock", zap.Error(err))
		}
	}
}
