package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que ClassificationStore implementa el puerto.
var _ repository.ClassificationRepository = (*ClassificationStore)(nil)

// ClassificationStore almacén en memoria de clasificaciones, clave = nombre
// exacto de la licencia. Mantiene una lista de claves aparte para preservar
// el orden de inserción en List/ListNames (un map de Go no lo garantiza).
// Seguro para uso concurrente; el contenido se pierde al reiniciar el proceso
// (la persistencia entre reinicios queda fuera del alcance del servicio).
type ClassificationStore struct {
	mu    sync.RWMutex
	items map[string]entity.Classification
	order []string
}

// NewClassificationStore construye un almacén vacío.
func NewClassificationStore() *ClassificationStore {
	return &ClassificationStore{items: make(map[string]entity.Classification)}
}

// Save inserta o reemplaza por LicenseName. Un reemplazo conserva la posición
// original de la clave en el orden de inserción.
func (s *ClassificationStore) Save(c *entity.Classification) error {
	if c == nil || c.LicenseName == "" {
		return fmt.Errorf("clasificación sin nombre de licencia: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[c.LicenseName]; !exists {
		s.order = append(s.order, c.LicenseName)
	}
	s.items[c.LicenseName] = *c
	return nil
}

// GetByName devuelve (nil, nil) si la licencia no está almacenada.
func (s *ClassificationStore) GetByName(licenseName string) (*entity.Classification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[licenseName]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve copias de todos los registros en orden de inserción.
func (s *ClassificationStore) List() ([]*entity.Classification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Classification, 0, len(s.order))
	for _, name := range s.order {
		c := s.items[name]
		out = append(out, &c)
	}
	return out, nil
}

// ListNames devuelve los nombres almacenados en orden de inserción.
func (s *ClassificationStore) ListNames() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out, nil
}

// Count devuelve el número de registros almacenados.
func (s *ClassificationStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

// Delete elimina y devuelve el registro; domain.ErrNotFound si no existe.
func (s *ClassificationStore) Delete(licenseName string) (*entity.Classification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[licenseName]
	if !ok {
		return nil, fmt.Errorf("licencia %q: %w", licenseName, domain.ErrNotFound)
	}

	delete(s.items, licenseName)
	for i, name := range s.order {
		if name == licenseName {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &c, nil
}

// Clear vacía el almacén y devuelve cuántos registros había.
func (s *ClassificationStore) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.items = make(map[string]entity.Classification)
	s.order = nil
	return n, nil
}
