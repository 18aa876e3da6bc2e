package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marchand/boutique-api/internal/application/analytics"
	"github.com/marchand/boutique-api/internal/application/dto"
)

// DashboardHandler requêtes HTTP du tableau de bord (protégé).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Agrégats du tableau de bord
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/analytics/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
