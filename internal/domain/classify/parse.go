package classify

import (
	"fmt"
	"strings"
)

// Etiquetas de la gramática de respuesta de dos líneas.
const (
	categoryLabel    = "Category:"
	explanationLabel = "Explanation:"
)

// Result es el par estructurado extraído de la respuesta del modelo.
// Category siempre pertenece al conjunto; Explanation nunca está vacía pero
// puede exceder el límite de longitud (la sanitización es un paso aparte).
type Result struct {
	Category    string
	Explanation string
}

// ParseResponse extrae (categoría, explicación) del texto libre del modelo.
// Es total: nunca devuelve error. Recuperación en orden:
//
//  1. Escaneo línea a línea buscando las etiquetas "Category:" y
//     "Explanation:"; si una etiqueta aparece varias veces gana la última.
//  2. Si la categoría no es miembro exacto del conjunto, se recorre el
//     conjunto en su orden configurado y se elige la primera categoría cuyo
//     nombre aparezca (sin distinguir mayúsculas) en el texto completo.
//  3. Sin coincidencia: categoría por defecto.
//  4. Sin línea de explicación: se sintetiza una referida a la categoría
//     resuelta.
func ParseResponse(raw string, cats Categories) Result {
	var category, explanation string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, categoryLabel):
			category = strings.TrimSpace(strings.TrimPrefix(line, categoryLabel))
		case strings.HasPrefix(line, explanationLabel):
			explanation = strings.TrimSpace(strings.TrimPrefix(line, explanationLabel))
		}
	}

	if !cats.Contains(category) {
		lower := strings.ToLower(raw)
		category = ""
		for _, valid := range cats.Names() {
			if strings.Contains(lower, strings.ToLower(valid)) {
				category = valid
				break
			}
		}
		if category == "" {
			category = cats.Default()
		}
	}

	if explanation == "" {
		explanation = fmt.Sprintf("Software classified as %s based on primary functionality.", category)
	}

	return Result{Category: category, Explanation: explanation}
}
