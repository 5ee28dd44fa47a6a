package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/dto"
	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// TransactionHandler handles income/expense record endpoints.
type TransactionHandler struct {
	transactionService service.TransactionService
	log                logger.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService service.TransactionService, log logger.Logger) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, log: log}
}

// Create records an income or expense.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	tx, err := h.transactionService.CreateTransaction(c.Request().Context(), req)
	if err != nil {
		h.log.Error("Failed to create transaction", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, tx)
}

// ListMonth returns a user's transactions for one calendar month. Year and
// month default to the current month when omitted.
func (h *TransactionHandler) ListMonth(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if err := echo.QueryParamsBinder(c).
		Int("year", &year).
		Int("month", &month).
		BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid year or month"})
	}

	txs, err := h.transactionService.ListMonth(c.Request().Context(), userID, year, month)
	if err != nil {
		h.log.Error("Failed to list transactions", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, txs)
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid transaction id"})
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), id, c.QueryParam("user_id")); err != nil {
		h.log.Error("Failed to delete transaction", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
