package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/dto"
	"github.com/tu-usuario/invoice-studio/internal/application/usecase"
	"github.com/tu-usuario/invoice-studio/internal/domain"
	"github.com/tu-usuario/invoice-studio/internal/domain/entity"
)

// PresetHandler maneja las peticiones HTTP para las colecciones de presets.
// El kind de la ruta selecciona la colección: company, client o payment.
type PresetHandler struct {
	uc *usecase.PresetUseCase
}

// NewPresetHandler construye el handler inyectando el caso de uso.
func NewPresetHandler(uc *usecase.PresetUseCase) *PresetHandler {
	return &PresetHandler{uc: uc}
}

// List godoc
// @Summary      Listar presets de una colección
// @Tags         presets
// @Produce      json
// @Param        kind  path  string  true  "company | client | payment"
// @Success      200   {object}  dto.PresetListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/presets/{kind} [get]
func (h *PresetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.PresetKind(c.Params("kind")))
	if err != nil {
		return presetError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar un preset desde el documento activo
// @Description  Un nombre ya existente sobrescribe ese preset en sitio conservando su ID.
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        kind  path  string                 true  "company | client | payment"
// @Param        body  body  dto.SavePresetRequest  true  "Nombre y documento origen"
// @Success      201   {object}  dto.PresetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/presets/{kind} [post]
func (h *PresetHandler) Save(c *fiber.Ctx) error {
	var in dto.SavePresetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document_id es requerido"})
	}
	out, err := h.uc.Save(entity.PresetKind(c.Params("kind")), in)
	if err != nil {
		return presetError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Apply godoc
// @Summary      Copiar un preset en el documento activo
// @Description  La colección no se modifica; no queda vínculo vivo entre preset y documento.
// @Tags         presets
// @Accept       json
// @Produce      json
// @Param        kind      path  string                  true  "company | client | payment"
// @Param        presetID  path  string                  true  "ID del preset"
// @Param        body      body  dto.ApplyPresetRequest  true  "Documento destino"
// @Success      200       {object}  dto.DocumentResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/presets/{kind}/{presetID}/apply [post]
func (h *PresetHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyPresetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document_id es requerido"})
	}
	out, err := h.uc.Apply(entity.PresetKind(c.Params("kind")), c.Params("presetID"), in.DocumentID)
	if err != nil {
		return presetError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un preset
// @Description  Un ID inexistente es un no-op; la respuesta es 204 en ambos casos.
// @Tags         presets
// @Param        kind      path  string  true  "company | client | payment"
// @Param        presetID  path  string  true  "ID del preset"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/presets/{kind}/{presetID} [delete]
func (h *PresetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(entity.PresetKind(c.Params("kind")), c.Params("presetID")); err != nil {
		return presetError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// presetError mapea errores de dominio a estados HTTP.
func presetError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPresetKind):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_KIND", Message: "tipo de preset inválido (company, client o payment)"})
	case errors.Is(err, domain.ErrPresetNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NAME_REQUIRED", Message: "el nombre del preset es requerido"})
	case errors.Is(err, domain.ErrDocumentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	case errors.Is(err, domain.ErrPresetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "preset no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
