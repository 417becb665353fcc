// Package csvutil extrae nombres de licencia de archivos CSV subidos.
// Solo importa la primera columna; la fila de cabecera se detecta por
// palabras clave y se descarta.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Licencias-api/internal/domain"
)

// headerKeywords marcan la primera fila como cabecera si su primera celda
// contiene alguna de ellas (sin distinguir mayúsculas).
var headerKeywords = []string{"name", "license", "software", "product", "title"}

// IsCSVFilename valida la extensión del archivo subido.
func IsCSVFilename(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".csv"
}

// ParseLicenses extrae los nombres de licencia del contenido crudo de un CSV.
// Tolera BOM y exportes UTF-16 de Excel (se transcodifican a UTF-8); cualquier
// otro contenido no-UTF-8 se rechaza con domain.ErrInvalidEncoding. Devuelve
// domain.ErrEmptyCSV si tras filtrar cabecera y filas en blanco no queda nada.
func ParseLicenses(content []byte) ([]string, error) {
	decoded, err := decodeToUTF8(content)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1 // las filas pueden variar en número de columnas

	var licenses []string
	for i := 0; ; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrInvalidInput, i+1, err)
		}

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if i == 0 && isHeaderCell(row[0]) {
			continue
		}

		licenses = append(licenses, strings.TrimSpace(row[0]))
	}

	if len(licenses) == 0 {
		return nil, domain.ErrEmptyCSV
	}
	return licenses, nil
}

// decodeToUTF8 quita el BOM y transcodifica UTF-16 si el BOM lo indica; sin
// BOM el contenido pasa tal cual y debe ser UTF-8 válido.
func decodeToUTF8(content []byte) ([]byte, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEncoding, err)
	}
	if !utf8.Valid(decoded) {
		return nil, domain.ErrInvalidEncoding
	}
	return decoded, nil
}

func isHeaderCell(cell string) bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	for _, kw := range headerKeywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	return false
}
