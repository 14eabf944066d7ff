package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/ledger"
	"github.com/tu-usuario/studio-pro/internal/domain"
)

// TransactionHandler maneja las peticiones HTTP del libro contable (solo ADMIN).
type TransactionHandler struct {
	uc *ledger.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create POST /api/finance/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txn, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

// List GET /api/finance/transactions?limit=20&offset=0
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/finance/transactions/:id
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	txn, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(txn)
}

// Update PUT /api/finance/transactions/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	txn, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(txn)
}

// Delete DELETE /api/finance/transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return transactionError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func transactionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type INCOME|EXPENSE, category y amount positivo son requeridos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
