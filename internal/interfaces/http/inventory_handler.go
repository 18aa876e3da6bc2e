package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/marchand/boutique-api/internal/application/analytics"
	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/application/inventory"
	"github.com/marchand/boutique-api/internal/domain"
)

// InventoryHandler requêtes HTTP des mouvements de stock et alertes (protégé).
type InventoryHandler struct {
	uc     *inventory.UseCase
	report *analytics.ReportUseCase
}

// NewInventoryHandler construit le handler.
func NewInventoryHandler(uc *inventory.UseCase, report *analytics.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, report: report}
}

// RegisterMovement godoc
// @Summary      Enregistrer un mouvement de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Mouvement IN, OUT ou ADJUSTMENT"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId est requis"})
	}
	out, err := h.uc.RegisterMovement(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return mapInventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetStock godoc
// @Summary      Poser directement le stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetStockRequest  true  "Nouveau stock"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [patch]
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId est requis"})
	}
	out, err := h.uc.SetStock(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return mapInventoryError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historique des mouvements
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "Filtrer par produit"
// @Param        limit    query  int     false  "Limite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListMovements(c.Query("product"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Produits sous leur seuil d'alerte
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary      Rapport d'inventaire PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	blob, err := h.report.StockReport()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rapport-inventaire.pdf"`)
	return c.Send(blob)
}

func mapInventoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produit ou variante introuvable"})
	case errors.Is(err, domain.ErrStockNegative):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "STOCK_NEGATIVE", Message: "le stock ne peut pas devenir négatif"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
