package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/dto"
	"github.com/amphorabeer/pms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports,
// nested under a specific property
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/daily-revenue", h.getDailyRevenue)
		reportingGroup.GET("/manager", h.getManagerReport)
		reportingGroup.GET("/monthly", h.getMonthlyReport)
	}
}

// parseDateQuery reads a YYYY-MM-DD query parameter, defaulting to today.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	dateStr := c.DefaultQuery(name, time.Now().Format(domain.DateLayout))
	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// getDailyRevenue godoc
// @Summary Generate daily revenue report
// @Description Aggregates the date's posted charges by category and department with a tax breakdown
// @Tags reports
// @Produce json
// @Param property_id path string true "Property ID"
// @Param date query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.DailyRevenueResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /properties/{property_id}/reports/daily-revenue [get]
func (h *reportingHandler) getDailyRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	report, err := h.reportingService.DailyRevenueReport(c.Request.Context(), propertyID, date)
	if err != nil {
		logger.Error("Failed to generate daily revenue report",
			slog.String("property_id", propertyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate daily revenue report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyRevenueResponse(report))
}

// getManagerReport godoc
// @Summary Generate manager report
// @Description Extends the daily revenue report with occupancy, ADR, RevPAR and outstanding balances
// @Tags reports
// @Produce json
// @Param property_id path string true "Property ID"
// @Param date query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ManagerReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /properties/{property_id}/reports/manager [get]
func (h *reportingHandler) getManagerReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	report, err := h.reportingService.ManagerReport(c.Request.Context(), propertyID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			logger.Error("Failed to generate manager report",
				slog.String("property_id", propertyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate manager report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToManagerReportResponse(report))
}

// getMonthlyReport godoc
// @Summary Generate monthly report
// @Description Sums the daily revenue reports of one calendar month
// @Tags reports
// @Produce json
// @Param property_id path string true "Property ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /properties/{property_id}/reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	var query struct {
		Year  int `form:"year" binding:"required"`
		Month int `form:"month" binding:"required,min=1,max=12"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month (1-12) query parameters are required"})
		return
	}

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), propertyID, query.Year, time.Month(query.Month))
	if err != nil {
		logger.Error("Failed to generate monthly report",
			slog.String("property_id", propertyID),
			slog.Int("year", query.Year),
			slog.Int("month", query.Month),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate monthly report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}
