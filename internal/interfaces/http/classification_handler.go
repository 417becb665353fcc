package http

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/pkg/csvutil"
)

// ClassificationHandler maneja las peticiones HTTP de clasificación de
// licencias: carga de CSV, consulta, actualización, borrado y estadísticas.
type ClassificationHandler struct {
	classify *usecase.ClassifyUseCase
	results  *usecase.ResultsUseCase
}

// NewClassificationHandler construye el handler inyectando los casos de uso.
func NewClassificationHandler(classify *usecase.ClassifyUseCase, results *usecase.ResultsUseCase) *ClassificationHandler {
	return &ClassificationHandler{classify: classify, results: results}
}

// Classify godoc
// @Summary      Clasificar licencias desde un archivo CSV
// @Description  Sube un CSV con nombres de licencia en la primera columna
//               (la fila de cabecera se detecta y descarta). Cada licencia se
//               clasifica con el LLM; un fallo del proveedor en una licencia
//               produce un registro de respaldo sin abortar el lote.
// @Tags         classification
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {array}   dto.ClassificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/classify [post]
func (h *ClassificationHandler) Classify(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_FILE", Message: "se requiere un archivo CSV en el campo 'file'",
		})
	}
	if !csvutil.IsCSVFilename(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FILE", Message: "solo se aceptan archivos CSV",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: fmt.Sprintf("abrir archivo: %v", err),
		})
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: fmt.Sprintf("leer archivo: %v", err),
		})
	}

	names, err := csvutil.ParseLicenses(content)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_CSV", Message: err.Error(),
		})
	}

	// ClassifyMany nunca falla: los errores por elemento se degradan a
	// registros de respaldo dentro del motor.
	classifications := h.classify.ClassifyMany(c.Context(), names)

	if err := h.results.SaveAll(classifications); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	out := make([]dto.ClassificationResponse, 0, len(classifications))
	for _, cl := range classifications {
		out = append(out, usecase.ToClassificationResponse(cl))
	}
	return c.JSON(out)
}

// ListResults godoc
// @Summary      Listar todos los resultados de clasificación
// @Tags         classification
// @Produce      json
// @Success      200  {array}   dto.ClassificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/results [get]
func (h *ClassificationHandler) ListResults(c *fiber.Ctx) error {
	list, err := h.results.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	if len(list) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NO_RESULTS", Message: "no hay clasificaciones; suba primero un archivo CSV",
		})
	}
	return c.JSON(list)
}

// GetResult godoc
// @Summary      Obtener la clasificación de una licencia
// @Tags         classification
// @Produce      json
// @Param        license_name  path  string  true  "Nombre exacto de la licencia (URL-encoded)"
// @Success      200  {object}  dto.ClassificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/results/{license_name} [get]
func (h *ClassificationHandler) GetResult(c *fiber.Ctx) error {
	name := licenseNameParam(c)
	result, err := h.results.GetByName(name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	if result == nil {
		return notFound(c, name)
	}
	return c.JSON(result)
}

// UpdateResult godoc
// @Summary      Actualizar manualmente una clasificación
// @Description  Reemplazo completo: categoría y explicación viajan juntas.
//               La categoría debe pertenecer al conjunto configurado y la
//               explicación se recorta al límite duro si lo excede.
// @Tags         classification
// @Accept       json
// @Produce      json
// @Param        license_name  path  string                    true  "Nombre exacto de la licencia"
// @Param        body          body  dto.UpdateLicenseRequest  true  "Nueva categoría y explicación"
// @Success      200  {object}  dto.ClassificationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/results/{license_name} [put]
func (h *ClassificationHandler) UpdateResult(c *fiber.Ctx) error {
	name := licenseNameParam(c)

	var in dto.UpdateLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	updated, err := h.results.Update(name, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, name)
		case errors.Is(err, domain.ErrInvalidCategory):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_CATEGORY", Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "INTERNAL", Message: err.Error(),
			})
		}
	}
	return c.JSON(updated)
}

// DeleteResult godoc
// @Summary      Eliminar la clasificación de una licencia
// @Tags         classification
// @Produce      json
// @Param        license_name  path  string  true  "Nombre exacto de la licencia"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/results/{license_name} [delete]
func (h *ClassificationHandler) DeleteResult(c *fiber.Ctx) error {
	name := licenseNameParam(c)

	deleted, err := h.results.Delete(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, name)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(dto.DeleteResponse{
		Message: fmt.Sprintf("clasificación de %q eliminada", name),
		Deleted: *deleted,
	})
}

// ClearResults godoc
// @Summary      Vaciar el almacén de clasificaciones
// @Tags         classification
// @Produce      json
// @Success      200  {object}  dto.ClearResponse
// @Router       /api/v1/results [delete]
func (h *ClassificationHandler) ClearResults(c *fiber.Ctx) error {
	removed, err := h.results.Clear()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(dto.ClearResponse{Message: "almacén vaciado", Removed: removed})
}

// Stats godoc
// @Summary      Estadísticas de clasificación
// @Tags         classification
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/v1/stats [get]
func (h *ClassificationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.results.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}

// licenseNameParam extrae el nombre de licencia del path. Los nombres suelen
// llevar espacios, así que llegan percent-encoded; si el unescape falla se usa
// el valor crudo.
func licenseNameParam(c *fiber.Ctx) string {
	raw := c.Params("license_name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func notFound(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code: "NOT_FOUND", Message: fmt.Sprintf("licencia %q no encontrada", name),
	})
}
