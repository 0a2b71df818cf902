package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/core/services"
	"github.com/amphorabeer/pms_backend/internal/dto"
	"github.com/amphorabeer/pms_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// folioHandler handles HTTP requests related to folios
type folioHandler struct {
	folioService portssvc.FolioSvcFacade
}

// newFolioHandler creates a new folioHandler
func newFolioHandler(fs portssvc.FolioSvcFacade) *folioHandler {
	return &folioHandler{
		folioService: fs,
	}
}

// RegisterFolioRoutes registers routes related to folios, nested under a
// specific property
func RegisterFolioRoutes(rg *gin.RouterGroup, folioService portssvc.FolioSvcFacade) {
	h := newFolioHandler(folioService)

	folioGroup := rg.Group("/folios")
	{
		folioGroup.GET("/:folio_id", h.getFolio)
		folioGroup.GET("/:folio_id/transactions", h.listTransactions)
		folioGroup.GET("/:folio_id/statement", h.getStatement)
		folioGroup.POST("/:folio_id/transactions", h.postTransaction)
		folioGroup.POST("/:folio_id/close", h.closeFolio)
	}
	rg.GET("/reservations/:reservation_id/folio", h.getFolioByReservation)
}

// getFolio godoc
// @Summary Get a folio
// @Description Retrieves a folio with its full transaction ledger
// @Tags folios
// @Produce json
// @Param property_id path string true "Property ID"
// @Param folio_id path string true "Folio ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to retrieve folio"
// @Security BearerAuth
// @Router /properties/{property_id}/folios/{folio_id} [get]
func (h *folioHandler) getFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")
	folioID := c.Param("folio_id")

	folio, err := h.folioService.GetFolio(c.Request.Context(), propertyID, folioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		} else {
			logger.Error("Failed to retrieve folio", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve folio"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// getFolioByReservation godoc
// @Summary Get the folio of a reservation
// @Description Retrieves the folio attached to a reservation
// @Tags folios
// @Produce json
// @Param property_id path string true "Property ID"
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} dto.FolioResponse
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to retrieve folio"
// @Security BearerAuth
// @Router /properties/{property_id}/reservations/{reservation_id}/folio [get]
func (h *folioHandler) getFolioByReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")
	reservationID := c.Param("reservation_id")

	folio, err := h.folioService.GetFolioByReservation(c.Request.Context(), propertyID, reservationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No folio exists for this reservation"})
		} else {
			logger.Error("Failed to retrieve folio for reservation", slog.String("reservation_id", reservationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve folio"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}

// listTransactions godoc
// @Summary List folio transactions
// @Description Retrieves a paginated slice of the folio's ledger
// @Tags folios
// @Produce json
// @Param property_id path string true "Property ID"
// @Param folio_id path string true "Folio ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /properties/{property_id}/folios/{folio_id}/transactions [get]
func (h *folioHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")
	folioID := c.Param("folio_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	txns, newToken, err := h.folioService.ListTransactions(c.Request.Context(), propertyID, folioID, limit, nextToken)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list transactions", slog.String("folio_id", folioID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    newToken,
	})
}

// getStatement godoc
// @Summary Get the folio statement
// @Description Produces the guest-facing statement projection of the folio
// @Tags folios
// @Produce json
// @Param property_id path string true "Property ID"
// @Param folio_id path string true "Folio ID"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /properties/{property_id}/folios/{folio_id}/statement [get]
func (h *folioHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")
	folioID := c.Param("folio_id")

	statement, err := h.folioService.Statement(c.Request.Context(), propertyID, folioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		} else {
			logger.Error("Failed to build statement", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// postTransaction godoc
// @Summary Post a transaction
// @Description Appends a charge, payment or adjustment to the folio ledger
// @Tags folios
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param folio_id path string true "Folio ID"
// @Param transaction body dto.PostTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio is closed"
// @Failure 500 {object} map[string]string "Failed to post transaction"
// @Security BearerAuth
// @Router /properties/{property_id}/folios/{folio_id}/transactions [post]
func (h *folioHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")
	folioID := c.Param("folio_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid post transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.folioService.Post(c.Request.Context(), propertyID, folioID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		case errors.Is(err, services.ErrFolioClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Folio is closed and cannot accept postings"})
		case errors.Is(err, services.ErrNegativeEntry), errors.Is(err, services.ErrInvalidEntryType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post transaction", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post transaction"})
		}
		return
	}

	logger.Info("Transaction posted",
		slog.String("folio_id", folioID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// closeFolio godoc
// @Summary Close a folio
// @Description Closes the folio, posting a settlement adjustment that zeroes any residual balance
// @Tags folios
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param folio_id path string true "Folio ID"
// @Param closure body dto.CloseFolioRequest true "Closure reason"
// @Success 200 {object} dto.FolioResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Folio not found"
// @Failure 409 {object} map[string]string "Folio already closed"
// @Failure 500 {object} map[string]string "Failed to close folio"
// @Security BearerAuth
// @Router /properties/{property_id}/folios/{folio_id}/close [post]
func (h *folioHandler) closeFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("property_id")
	folioID := c.Param("folio_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CloseFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid close folio request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	folio, err := h.folioService.Close(c.Request.Context(), propertyID, folioID, req.Reason, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folio not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Folio is already closed"})
		default:
			logger.Error("Failed to close folio", slog.String("folio_id", folioID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close folio"})
		}
		return
	}

	logger.Info("Folio closed", slog.String("folio_id", folioID), slog.String("reason", req.Reason))
	c.JSON(http.StatusOK, dto.ToFolioResponse(folio))
}
