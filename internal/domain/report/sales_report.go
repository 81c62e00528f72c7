package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesRow is one order line resolved against its order, user and
// product. Rows are the unit of aggregation for sales reporting:
// cancelled orders and lines whose user or product no longer exists
// never appear as rows.
type SalesRow struct {
	OrderID     uuid.UUID
	OrderedAt   time.Time
	UserID      uuid.UUID
	UserName    string
	UserEmail   string
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

// OverallStats summarizes all rows in the report window.
type OverallStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalOrders   int             `json:"totalOrders"`
}

// ProductRevenue is a single product's aggregated sales.
type ProductRevenue struct {
	ProductID    uuid.UUID       `json:"productId"`
	Name         string          `json:"name"`
	Revenue      decimal.Decimal `json:"revenue"`
	QuantitySold int             `json:"quantitySold"`
}

// UserSpend is a single customer's aggregated purchases.
type UserSpend struct {
	UserID        uuid.UUID       `json:"userId"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	TotalQuantity int             `json:"totalQuantity"`
	OrdersCount   int             `json:"ordersCount"`
}

// MonthlySales is revenue and quantity for one calendar month.
type MonthlySales struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalQuantity int             `json:"totalQuantity"`
}

// SalesReport is the four rollups computed over a date range.
// OverallStats holds at most one element and is empty when no rows
// matched the window.
type SalesReport struct {
	OverallStats []OverallStats   `json:"overallStats"`
	TopProducts  []ProductRevenue `json:"topProducts"`
	TopUsers     []UserSpend      `json:"topUsers"`
	MonthlySales []MonthlySales   `json:"monthlySales"`
}

// SalesRowRepository loads resolved sales rows for a window. Start and
// end are inclusive instants; implementations must return rows in a
// deterministic order so downstream tie-breaking is stable.
type SalesRowRepository interface {
	FindRows(ctx context.Context, start, end time.Time) ([]SalesRow, error)
}
