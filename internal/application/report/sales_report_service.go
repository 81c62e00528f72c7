package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/report"
	"github.com/storefront/backend/internal/domain/shared"
)

const (
	dateLayout = "2006-01-02"
	topN       = 5
)

// SalesReportService computes sales rollups over a date window.
type SalesReportService struct {
	rows   report.SalesRowRepository
	logger *zap.Logger
}

// NewSalesReportService creates a new sales report service
func NewSalesReportService(rows report.SalesRowRepository, logger *zap.Logger) *SalesReportService {
	return &SalesReportService{
		rows:   rows,
		logger: logger,
	}
}

// Generate builds the report for the inclusive [startDate, endDate]
// window. Both parameters are required and must be YYYY-MM-DD dates.
// A window with no matching orders yields a report with empty rollups,
// including the case where startDate is after endDate.
func (s *SalesReportService) Generate(ctx context.Context, startDate, endDate string) (*report.SalesReport, error) {
	if startDate == "" || endDate == "" {
		return nil, shared.NewDomainError("MISSING_PARAMETER", "startDate and endDate are required")
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE_FORMAT", "Invalid date format. Use YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE_FORMAT", "Invalid date format. Use YYYY-MM-DD")
	}

	// The end date covers the whole day.
	endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	rows, err := s.rows.FindRows(ctx, start, endOfDay)
	if err != nil {
		s.logger.Error("Failed to load sales rows",
			zap.String("start_date", startDate),
			zap.String("end_date", endDate),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Generating sales report",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
		zap.Int("rows", len(rows)))

	return &report.SalesReport{
		OverallStats: overallStats(rows),
		TopProducts:  topProducts(rows),
		TopUsers:     topUsers(rows),
		MonthlySales: monthlySales(rows),
	}, nil
}

// overallStats sums every row into a single bucket. TotalOrders counts
// rows, not distinct orders, so a three-line order contributes three.
func overallStats(rows []report.SalesRow) []report.OverallStats {
	if len(rows) == 0 {
		return []report.OverallStats{}
	}

	stats := report.OverallStats{TotalRevenue: decimal.Zero}
	for _, row := range rows {
		stats.TotalRevenue = stats.TotalRevenue.Add(row.LineTotal)
		stats.TotalQuantity += row.Quantity
		stats.TotalOrders++
	}
	return []report.OverallStats{stats}
}

// topProducts groups rows by product and keeps the five highest by
// revenue. Ties keep the order products first appeared in the rows,
// which is stable because the repository returns rows deterministically.
func topProducts(rows []report.SalesRow) []report.ProductRevenue {
	byProduct := make(map[uuid.UUID]*report.ProductRevenue)
	order := make([]uuid.UUID, 0)

	for _, row := range rows {
		entry, ok := byProduct[row.ProductID]
		if !ok {
			entry = &report.ProductRevenue{
				ProductID: row.ProductID,
				Name:      row.ProductName,
				Revenue:   decimal.Zero,
			}
			byProduct[row.ProductID] = entry
			order = append(order, row.ProductID)
		}
		entry.Revenue = entry.Revenue.Add(row.LineTotal)
		entry.QuantitySold += row.Quantity
	}

	result := make([]report.ProductRevenue, 0, len(order))
	for _, id := range order {
		result = append(result, *byProduct[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	if len(result) > topN {
		result = result[:topN]
	}
	return result
}

// topUsers groups rows by user and keeps the five highest by spend.
// OrdersCount counts rows like overallStats does.
func topUsers(rows []report.SalesRow) []report.UserSpend {
	byUser := make(map[uuid.UUID]*report.UserSpend)
	order := make([]uuid.UUID, 0)

	for _, row := range rows {
		entry, ok := byUser[row.UserID]
		if !ok {
			entry = &report.UserSpend{
				UserID:     row.UserID,
				Name:       row.UserName,
				Email:      row.UserEmail,
				TotalSpent: decimal.Zero,
			}
			byUser[row.UserID] = entry
			order = append(order, row.UserID)
		}
		entry.TotalSpent = entry.TotalSpent.Add(row.LineTotal)
		entry.TotalQuantity += row.Quantity
		entry.OrdersCount++
	}

	result := make([]report.UserSpend, 0, len(order))
	for _, id := range order {
		result = append(result, *byUser[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent.GreaterThan(result[j].TotalSpent)
	})
	if len(result) > topN {
		result = result[:topN]
	}
	return result
}

// monthlySales buckets rows by the calendar month the order was placed
// in, ascending by year then month.
func monthlySales(rows []report.SalesRow) []report.MonthlySales {
	type monthKey struct {
		year  int
		month int
	}

	byMonth := make(map[monthKey]*report.MonthlySales)
	keys := make([]monthKey, 0)

	for _, row := range rows {
		key := monthKey{year: row.OrderedAt.Year(), month: int(row.OrderedAt.Month())}
		entry, ok := byMonth[key]
		if !ok {
			entry = &report.MonthlySales{
				Year:         key.year,
				Month:        key.month,
				TotalRevenue: decimal.Zero,
			}
			byMonth[key] = entry
			keys = append(keys, key)
		}
		entry.TotalRevenue = entry.TotalRevenue.Add(row.LineTotal)
		entry.TotalQuantity += row.Quantity
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	result := make([]report.MonthlySales, 0, len(keys))
	for _, key := range keys {
		result = append(result, *byMonth[key])
	}
	return result
}
