package ordering

import (
	"github.com/google/uuid"
)

// OrderLineInput is a single requested product within a new order
type OrderLineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PlaceOrderInput contains input for placing an order
type PlaceOrderInput struct {
	UserID          uuid.UUID
	Lines           []OrderLineInput
	ShippingAddress string
}
