package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the status may move to target.
// The flow is pending -> processing -> shipped -> delivered, with
// cancellation allowed before shipping.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	default:
		return false
	}
}

// OrderLine is a single product entry within an order. The product
// name and unit price are snapshotted at order time so later catalog
// edits do not rewrite order history.
type OrderLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string          `gorm:"type:varchar(200);not null" json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"line_total"`
}

func (OrderLine) TableName() string {
	return "order_lines"
}

// Order is the ordering aggregate root.
type Order struct {
	shared.BaseAggregateRoot
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Lines           []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Cancelled       bool            `gorm:"not null;default:false;index" json:"cancelled"`
	OrderedAt       time.Time       `gorm:"not null;index" json:"ordered_at"`
	ShippingAddress string          `gorm:"type:varchar(500)" json:"shipping_address"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order for the given user. Lines are added
// with AddLine before the order is persisted.
func NewOrder(userID uuid.UUID, shippingAddress string) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "user id is required")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Lines:             []OrderLine{},
		TotalAmount:       decimal.Zero,
		Status:            OrderStatusPending,
		Cancelled:         false,
		OrderedAt:         time.Now().UTC(),
		ShippingAddress:   shippingAddress,
	}, nil
}

// AddLine appends a product line and recomputes the order total.
func (o *Order) AddLine(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_ORDER_STATE", "lines can only be added to a pending order")
	}
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "product id is required")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "unit price cannot be negative")
	}

	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	o.Lines = append(o.Lines, OrderLine{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		LineTotal:   lineTotal,
	})
	o.TotalAmount = o.TotalAmount.Add(lineTotal)
	return nil
}

// Cancel marks the order cancelled. Shipped and delivered orders
// cannot be cancelled.
func (o *Order) Cancel() error {
	if o.Cancelled {
		return shared.NewDomainError("ORDER_ALREADY_CANCELLED", "order is already cancelled")
	}
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_ORDER_STATE", "order can no longer be cancelled")
	}

	now := time.Now().UTC()
	o.Status = OrderStatusCancelled
	o.Cancelled = true
	o.CancelledAt = &now
	o.IncrementVersion()
	return nil
}

// UpdateStatus moves the order along its lifecycle.
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_ORDER_STATUS", "unknown order status: "+target.String())
	}
	if target == OrderStatusCancelled {
		return o.Cancel()
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_ORDER_STATE",
			"cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	o.Status = target
	o.IncrementVersion()
	return nil
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.Lines) == 0
}
