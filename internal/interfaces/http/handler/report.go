package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	reportapp "github.com/storefront/backend/internal/application/report"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.SalesReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.SalesReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales returns the sales report for an inclusive date window.
//
// This endpoint keeps a flat message/data response shape for
// compatibility with existing report consumers, unlike the rest of
// the API which uses the standard envelope.
func (h *ReportHandler) Sales(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	result, err := h.reportService.Generate(c.Request.Context(), startDate, endDate)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) &&
			(domainErr.Code == "MISSING_PARAMETER" || domainErr.Code == "INVALID_DATE_FORMAT") {
			c.JSON(http.StatusBadRequest, gin.H{"message": domainErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Server Error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Sales report from %s to %s", startDate, endDate),
		"data":    result,
	})
}
