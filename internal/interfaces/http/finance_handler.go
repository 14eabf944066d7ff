package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/studio-pro/internal/application/dto"
	"github.com/tu-usuario/studio-pro/internal/application/ledger"
)

// FinanceHandler sirve las vistas agregadas: stats de finanzas y dashboard.
type FinanceHandler struct {
	uc *ledger.StatsUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *ledger.StatsUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Stats GET /api/finance/stats (solo ADMIN)
func (h *FinanceHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// Dashboard GET /api/dashboard (cualquier rol autenticado)
// El contenido depende del rol: las finanzas solo se incluyen para ADMIN.
func (h *FinanceHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
