package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/invoice-studio/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocumentUC *usecase.DocumentUseCase
	PresetUC   *usecase.PresetUseCase
	PDFUC      *usecase.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Documents: el documento activo en edición
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.PDFUC)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Patch("/:id", documentHandler.Update)
	documents.Post("/:id/items", documentHandler.AddItem)
	documents.Patch("/:id/items/:itemID", documentHandler.UpdateItem)
	documents.Delete("/:id/items/:itemID", documentHandler.RemoveItem)
	documents.Get("/:id/totals", documentHandler.Totals)
	documents.Get("/:id/pdf", documentHandler.DownloadPDF)

	// Presets: colecciones independientes por kind (company, client, payment)
	presets := api.Group("/presets")
	presetHandler := NewPresetHandler(deps.PresetUC)
	presets.Get("/:kind", presetHandler.List)
	presets.Post("/:kind", presetHandler.Save)
	presets.Post("/:kind/:presetID/apply", presetHandler.Apply)
	presets.Delete("/:kind/:presetID", presetHandler.Delete)
}
