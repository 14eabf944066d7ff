package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/scheduling"
	"github.com/tu-usuario/studio-pro/internal/domain"
)

// ShootHandler maneja las peticiones HTTP de sesiones (solo ADMIN).
type ShootHandler struct {
	uc       *scheduling.ShootUseCase
	receipts *scheduling.ReceiptUseCase
}

// NewShootHandler construye el handler.
func NewShootHandler(uc *scheduling.ShootUseCase, receipts *scheduling.ReceiptUseCase) *ShootHandler {
	return &ShootHandler{uc: uc, receipts: receipts}
}

// Create POST /api/shoots
func (h *ShootHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShootRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shoot, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return shootError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shoot)
}

// List GET /api/shoots?q=boda&from=2026-09-01T00:00:00Z&to=2026-09-30T23:59:59Z
// Sin rango devuelve todas; con from/to sirve la vista calendario.
func (h *ShootHandler) List(c *fiber.Ctx) error {
	in := dto.ShootListRequest{Query: c.Query("q")}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		in.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		in.To = &t
	}
	list, err := h.uc.List(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/shoots/:id
func (h *ShootHandler) GetByID(c *fiber.Ctx) error {
	shoot, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return shootError(c, err)
	}
	return c.JSON(shoot)
}

// Update PUT /api/shoots/:id
// No toca precio ni abono: esos pasan por /price y /payments.
func (h *ShootHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShootRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shoot, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return shootError(c, err)
	}
	return c.JSON(shoot)
}

// Delete DELETE /api/shoots/:id
func (h *ShootHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return shootError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// RecordPayment POST /api/shoots/:id/payments
// Registra un abono: sube el acumulado y asienta el ingreso en el libro, todo
// en una transacción. Un abono que exceda el precio total se rechaza con 422.
func (h *ShootHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return shootError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePrice PATCH /api/shoots/:id/price
// El precio nuevo no puede quedar debajo de lo ya abonado (422).
func (h *ShootHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	shoot, err := h.uc.UpdatePrice(c.Context(), c.Params("id"), in.TotalPrice)
	if err != nil {
		return shootError(c, err)
	}
	return c.JSON(shoot)
}

// Receipt GET /api/shoots/:id/receipt
// Devuelve el recibo de pago en PDF con el historial de abonos.
func (h *ShootHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipts.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return shootError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// shootError mapea los errores de dominio de sesiones a HTTP.
func shootError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
	case errors.Is(err, domain.ErrDepositExceedsPrice):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "DEPOSIT_EXCEEDS_PRICE", Message: "el abono superaría el precio total de la sesión"})
	case errors.Is(err, domain.ErrPriceBelowDeposit):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRICE_BELOW_DEPOSIT", Message: "el precio no puede quedar debajo de lo ya abonado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la sesión inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
