package classify

import (
	"fmt"
	"strings"
)

// Categories es el conjunto ordenado de categorías válidas más la categoría
// por defecto (catch-all). El orden importa: la heurística de recuperación de
// ParseResponse elige la PRIMERA categoría cuyo nombre aparezca en la
// respuesta, así que reordenar el conjunto cambia el resultado de forma
// determinista.
type Categories struct {
	names    []string
	fallback string
}

// NewCategories valida y construye el conjunto. Rechaza un conjunto vacío y
// una categoría por defecto que no pertenezca al conjunto: un prompt sin
// categorías sería inutilizable y es preferible fallar en el arranque.
func NewCategories(names []string, fallback string) (Categories, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			cleaned = append(cleaned, n)
		}
	}
	if len(cleaned) == 0 {
		return Categories{}, fmt.Errorf("el conjunto de categorías no puede estar vacío")
	}

	c := Categories{names: cleaned, fallback: strings.TrimSpace(fallback)}
	if !c.Contains(c.fallback) {
		return Categories{}, fmt.Errorf("la categoría por defecto %q no pertenece al conjunto", fallback)
	}
	return c, nil
}

// Names devuelve una copia del conjunto en su orden configurado.
func (c Categories) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Default devuelve la categoría catch-all configurada.
func (c Categories) Default() string { return c.fallback }

// Contains indica si name es miembro exacto del conjunto.
func (c Categories) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}
