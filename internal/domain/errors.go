package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidCategory = errors.New("categoría no permitida")
	ErrLLMProvider     = errors.New("fallo del proveedor LLM")
	ErrEmptyCSV        = errors.New("el archivo CSV no contiene licencias válidas")
	ErrInvalidEncoding = errors.New("codificación del archivo inválida; use UTF-8")
)
