package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcontent "github.com/marchand/boutique-api/internal/application/content"
	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
)

// SectionHandler requêtes HTTP des sections de la page d'accueil (protégé).
type SectionHandler struct {
	uc *appcontent.SectionUseCase
}

// NewSectionHandler construit le handler.
func NewSectionHandler(uc *appcontent.SectionUseCase) *SectionHandler {
	return &SectionHandler{uc: uc}
}

// List godoc
// @Summary      Lister les sections d'accueil
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SectionListResponse
// @Router       /api/content/home-sections [get]
func (h *SectionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Créer une section
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSectionRequest  true  "Nouvelle section"
// @Success      201   {object}  dto.SectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/content/home-sections [post]
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Title == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title et type sont requis"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Section par ID
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la section"
// @Success      200  {object}  dto.SectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/home-sections/{id} [get]
func (h *SectionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Mise à jour partielle d'une section
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la section"
// @Param        body  body  dto.UpdateSectionRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.SectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/home-sections/{id} [patch]
func (h *SectionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Réordonner les sections en bloc
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderSectionsRequest  true  "Ordre souhaité"
// @Success      200   {object}  dto.SectionListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/content/home-sections [put]
func (h *SectionHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderSectionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Reorder(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Duplicate godoc
// @Summary      Dupliquer une section
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la section à dupliquer"
// @Success      201  {object}  dto.SectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/home-sections/{id}/duplicate [post]
func (h *SectionHandler) Duplicate(c *fiber.Ctx) error {
	out, err := h.uc.Duplicate(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ToggleVisibility godoc
// @Summary      Basculer la visibilité d'une section
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la section"
// @Success      200  {object}  dto.SectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/home-sections/{id}/visibility [patch]
func (h *SectionHandler) ToggleVisibility(c *fiber.Ctx) error {
	out, err := h.uc.ToggleVisibility(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une section
// @Tags         content
// @Security     Bearer
// @Param        id  path  string  true  "ID de la section"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/home-sections/{id} [delete]
func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetCollectionItems godoc
// @Summary      Items du carrousel d'une section collection
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la section"
// @Success      200  {object}  dto.CollectionItemsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/home-section/{id}/collections [get]
func (h *SectionHandler) GetCollectionItems(c *fiber.Ctx) error {
	out, err := h.uc.GetCollectionItems(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}
	return c.JSON(out)
}

// PutCollectionItems godoc
// @Summary      Remplacer les items du carrousel d'une section collection
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la section"
// @Param        body  body  dto.CollectionItemsRequest  true  "Items et config"
// @Success      200   {object}  dto.CollectionItemsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/home-section/{id}/collections [put]
func (h *SectionHandler) PutCollectionItems(c *fiber.Ctx) error {
	var in dto.CollectionItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.PutCollectionItems(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLastItem):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "un carrousel garde au moins un item"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}
	return c.JSON(out)
}
