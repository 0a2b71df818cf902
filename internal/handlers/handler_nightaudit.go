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

// nightAuditHandler handles HTTP requests that trigger or inspect the
// night-audit batch
type nightAuditHandler struct {
	nightAuditService portssvc.NightAuditSvc
}

// newNightAuditHandler creates a new nightAuditHandler
func newNightAuditHandler(ns portssvc.NightAuditSvc) *nightAuditHandler {
	return &nightAuditHandler{
		nightAuditService: ns,
	}
}

// registerNightAuditRoutes registers routes related to the night audit,
// nested under a specific property. An optional middleware (rate limiting)
// is applied to the trigger endpoint.
func registerNightAuditRoutes(rg *gin.RouterGroup, nightAuditService portssvc.NightAuditSvc, triggerMiddleware ...gin.HandlerFunc) {
	h := newNightAuditHandler(nightAuditService)

	auditGroup := rg.Group("/night-audit")
	{
		auditGroup.POST("", append(triggerMiddleware, h.runNightAudit)...)
		auditGroup.GET("/last", h.getLastAuditDate)
	}
}

// runNightAudit godoc
// @Summary Run the night audit
// @Description Executes room posting, package posting, auto-close and the tax summary for one business date
// @Tags night-audit
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param request body dto.RunNightAuditRequest true "Audit date"
// @Success 200 {object} dto.NightAuditResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Night audit failed"
// @Security BearerAuth
// @Router /properties/{property_id}/night-audit [post]
func (h *nightAuditHandler) runNightAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.RunNightAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid night audit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	auditDate, err := time.Parse(domain.DateLayout, req.AuditDate)
	if err != nil {
		logger.Warn("Invalid audit date format", slog.String("auditDate", req.AuditDate))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid auditDate format. Use YYYY-MM-DD"})
		return
	}

	logger.Info("Received request to run night audit",
		slog.String("property_id", propertyID),
		slog.String("audit_date", req.AuditDate))

	report, err := h.nightAuditService.RunNightAudit(c.Request.Context(), propertyID, auditDate, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			logger.Error("Night audit failed", slog.String("property_id", propertyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Night audit failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToNightAuditResponse(report))
}

// getLastAuditDate godoc
// @Summary Get the last audit date
// @Description Returns the property's night-audit marker, null when no audit has ever completed
// @Tags night-audit
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to read audit marker"
// @Security BearerAuth
// @Router /properties/{property_id}/night-audit/last [get]
func (h *nightAuditHandler) getLastAuditDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")

	lastAudit, err := h.nightAuditService.LastAuditDate(c.Request.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			logger.Error("Failed to read audit marker", slog.String("property_id", propertyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audit marker"})
		}
		return
	}

	var lastAuditStr *string
	if lastAudit != nil {
		s := lastAudit.Format(domain.DateLayout)
		lastAuditStr = &s
	}
	c.JSON(http.StatusOK, gin.H{"lastAuditDate": lastAuditStr})
}
