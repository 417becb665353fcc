package classify

// ellipsis marca visiblemente un recorte; ocupa los 3 caracteres finales.
const ellipsis = "..."

// TruncateExplanation garantiza len(resultado) <= max en caracteres (runas,
// no bytes: una explicación multibyte nunca se corta a mitad de carácter).
// Si el texto cabe se devuelve intacto; si no, se devuelven exactamente max
// caracteres: los primeros max-3 del original más el marcador de elipsis.
// Se aplica en cada punto donde una explicación entra al sistema: tras el
// parseo de la respuesta del LLM y tras una actualización manual.
func TruncateExplanation(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}
