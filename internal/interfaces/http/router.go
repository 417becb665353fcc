package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licencias-api/internal/application/usecase"
)

// Version de la API expuesta en el endpoint raíz.
const Version = "1.0.0"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClassifyUC *usecase.ClassifyUseCase
	ResultsUC  *usecase.ResultsUseCase
	AppName    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", serviceInfo(deps.AppName))

	api := app.Group("/api/v1")
	handler := NewClassificationHandler(deps.ClassifyUC, deps.ResultsUC)

	api.Post("/classify", handler.Classify)
	api.Get("/results", handler.ListResults)
	api.Delete("/results", handler.ClearResults)
	api.Get("/results/:license_name", handler.GetResult)
	api.Put("/results/:license_name", handler.UpdateResult)
	api.Delete("/results/:license_name", handler.DeleteResult)
	api.Get("/stats", handler.Stats)
}

// serviceInfo describe el servicio y su mapa de endpoints.
func serviceInfo(appName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": appName,
			"version": Version,
			"endpoints": fiber.Map{
				"POST /api/v1/classify":                 "subir un CSV y clasificar las licencias",
				"GET /api/v1/results":                   "ver todos los resultados",
				"GET /api/v1/results/{license_name}":    "ver la clasificación de una licencia",
				"PUT /api/v1/results/{license_name}":    "actualizar una clasificación",
				"DELETE /api/v1/results/{license_name}": "eliminar una clasificación",
				"DELETE /api/v1/results":                "vaciar el almacén",
				"GET /api/v1/stats":                     "estadísticas de clasificación",
			},
			"docs": "/docs",
		})
	}
}
