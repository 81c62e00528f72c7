package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/report"
)

// GormSalesRowRepository implements SalesRowRepository using GORM.
// It flattens orders into one row per line and resolves user and
// product attributes with inner joins, so cancelled orders and lines
// whose user or product was deleted never produce a row.
type GormSalesRowRepository struct {
	db *gorm.DB
}

// NewGormSalesRowRepository creates a new GormSalesRowRepository
func NewGormSalesRowRepository(db *gorm.DB) *GormSalesRowRepository {
	return &GormSalesRowRepository{db: db}
}

// FindRows loads resolved sales rows for orders placed within
// [start, end]. Rows come back ordered by order time, then order ID,
// then line ID, so repeated calls over the same data are identical.
func (r *GormSalesRowRepository) FindRows(ctx context.Context, start, end time.Time) ([]report.SalesRow, error) {
	rows := make([]report.SalesRow, 0)

	err := r.db.WithContext(ctx).
		Table("order_lines AS l").
		Select(`o.id AS order_id,
			o.ordered_at AS ordered_at,
			u.id AS user_id,
			u.name AS user_name,
			u.email AS user_email,
			p.id AS product_id,
			p.name AS product_name,
			l.unit_price AS unit_price,
			l.quantity AS quantity,
			l.line_total AS line_total`).
		Joins("INNER JOIN orders o ON o.id = l.order_id").
		Joins("INNER JOIN users u ON u.id = o.user_id").
		Joins("INNER JOIN products p ON p.id = l.product_id").
		Where("o.ordered_at BETWEEN ? AND ?", start, end).
		Where("o.cancelled = ?", false).
		Order("o.ordered_at ASC, o.id ASC, l.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Ensure GormSalesRowRepository implements SalesRowRepository
var _ report.SalesRowRepository = (*GormSalesRowRepository)(nil)
