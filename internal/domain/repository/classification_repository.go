package repository

import "github.com/jhoicas/Licencias-api/internal/domain/entity"

// ClassificationRepository define el puerto de almacenamiento para
// Classification (DIP). La clave es el nombre exacto de la licencia tal como
// llegó: el almacén no normaliza mayúsculas ni espacios. Las implementaciones
// deben preservar el orden de inserción en List y ListNames.
type ClassificationRepository interface {
	// Save inserta o reemplaza (upsert) la clasificación por su LicenseName.
	Save(c *entity.Classification) error
	GetByName(licenseName string) (*entity.Classification, error)
	List() ([]*entity.Classification, error)
	ListNames() ([]string, error)
	Count() (int, error)
	// Delete elimina y devuelve el registro; domain.ErrNotFound si no existe.
	Delete(licenseName string) (*entity.Classification, error)
	// Clear vacía el almacén y devuelve cuántos registros eliminó.
	Clear() (int, error)
}
