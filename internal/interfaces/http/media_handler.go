package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/application/usecase"
	"github.com/marchand/boutique-api/internal/domain"
)

// MediaHandler requêtes HTTP de la médiathèque (protégé).
type MediaHandler struct {
	uc *usecase.MediaUseCase
}

// NewMediaHandler construit le handler.
func NewMediaHandler(uc *usecase.MediaUseCase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Upload godoc
// @Summary      Uploader un fichier
// @Tags         media
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Fichier"
// @Param        folder  formData  string  false  "Dossier cible"
// @Param        alt     formData  string  false  "Texte alternatif"
// @Param        tags    formData  string  false  "Tags séparés par des virgules"
// @Success      201     {object}  dto.MediaResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "champ file requis"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "fichier illisible"})
	}
	defer f.Close()

	var tags []string
	if raw := c.FormValue("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	out, err := h.uc.Upload(usecase.UploadInput{
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Folder:       c.FormValue("folder"),
		Alt:          c.FormValue("alt"),
		Tags:         tags,
		Body:         f,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister la médiathèque
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Param        folder  query  string  false  "Filtrer par dossier"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MediaListResponse
// @Router       /api/media [get]
func (h *MediaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Query("folder"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un fichier
// @Tags         media
// @Security     Bearer
// @Param        id  path  string  true  "ID du fichier"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/upload/{id} [delete]
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fichier introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
