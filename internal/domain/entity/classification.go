package entity

// Classification representa el resultado de clasificar una licencia de software.
// La identidad externa es LicenseName (string opaco: sin normalización de
// mayúsculas ni espacios). Category y Explanation se reemplazan siempre juntos;
// no existen actualizaciones parciales.
type Classification struct {
	LicenseName string
	Category    string // miembro del conjunto configurado de categorías
	Explanation string // como máximo MAX_EXPLANATION_LENGTH caracteres
}
