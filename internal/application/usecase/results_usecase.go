package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/classify"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
)

// ResultsUseCase aplica las reglas de negocio sobre los resultados
// almacenados: consulta, reemplazo manual, borrado y estadísticas.
// El motor de clasificación no conoce este caso de uso ni el almacén.
type ResultsUseCase struct {
	repo           repository.ClassificationRepository
	cats           classify.Categories
	maxExplanation int
}

// NewResultsUseCase construye el caso de uso con el puerto de almacenamiento.
func NewResultsUseCase(repo repository.ClassificationRepository, cats classify.Categories, maxExplanation int) *ResultsUseCase {
	return &ResultsUseCase{repo: repo, cats: cats, maxExplanation: maxExplanation}
}

// SaveAll persiste un lote de clasificaciones (upsert por nombre de licencia).
func (uc *ResultsUseCase) SaveAll(list []*entity.Classification) error {
	for _, c := range list {
		if err := uc.repo.Save(c); err != nil {
			return fmt.Errorf("guardar %q: %w", c.LicenseName, err)
		}
	}
	return nil
}

// List devuelve todas las clasificaciones en orden de inserción.
func (uc *ResultsUseCase) List() ([]dto.ClassificationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClassificationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, ToClassificationResponse(c))
	}
	return items, nil
}

// GetByName obtiene una clasificación; (nil, nil) si no existe.
func (uc *ResultsUseCase) GetByName(licenseName string) (*dto.ClassificationResponse, error) {
	c, err := uc.repo.GetByName(licenseName)
	if err != nil || c == nil {
		return nil, err
	}
	out := ToClassificationResponse(c)
	return &out, nil
}

// Update reemplaza por completo la clasificación de una licencia existente.
// Valida que la categoría pertenezca al conjunto configurado
// (domain.ErrInvalidCategory si no) y re-sanitiza la explicación: el límite
// duro se aplica en TODO punto de entrada, también en el manual.
func (uc *ResultsUseCase) Update(licenseName string, in dto.UpdateLicenseRequest) (*dto.ClassificationResponse, error) {
	existing, err := uc.repo.GetByName(licenseName)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("licencia %q: %w", licenseName, domain.ErrNotFound)
	}

	if !uc.cats.Contains(in.Category) {
		return nil, fmt.Errorf("%w: debe ser una de: %s",
			domain.ErrInvalidCategory, strings.Join(uc.cats.Names(), ", "))
	}

	updated := &entity.Classification{
		LicenseName: licenseName,
		Category:    in.Category,
		Explanation: classify.TruncateExplanation(in.Explanation, uc.maxExplanation),
	}
	if err := uc.repo.Save(updated); err != nil {
		return nil, err
	}

	out := ToClassificationResponse(updated)
	return &out, nil
}

// Delete elimina la clasificación y la devuelve; domain.ErrNotFound si falta.
func (uc *ResultsUseCase) Delete(licenseName string) (*dto.ClassificationResponse, error) {
	deleted, err := uc.repo.Delete(licenseName)
	if err != nil {
		return nil, err
	}
	out := ToClassificationResponse(deleted)
	return &out, nil
}

// Clear vacía el almacén y devuelve el número de registros eliminados.
func (uc *ResultsUseCase) Clear() (int, error) {
	return uc.repo.Clear()
}

// Stats agrega total, distribución por categoría y nombres almacenados.
func (uc *ResultsUseCase) Stats() (*dto.StatsResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	names, err := uc.repo.ListNames()
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int)
	for _, c := range list {
		distribution[c.Category]++
	}

	return &dto.StatsResponse{
		TotalLicenses:        len(list),
		CategoryDistribution: distribution,
		Licenses:             names,
	}, nil
}

// ToClassificationResponse mapea la entidad a su representación HTTP.
func ToClassificationResponse(c *entity.Classification) dto.ClassificationResponse {
	return dto.ClassificationResponse{
		LicenseName: c.LicenseName,
		Category:    c.Category,
		Explanation: c.Explanation,
	}
}
