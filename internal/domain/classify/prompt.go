package classify

import (
	"fmt"
	"strings"
)

// systemPrompt fija la persona del modelo y el rango objetivo de longitud de
// la explicación (140–145). El rango es deliberadamente más estrecho que el
// límite duro MAX_EXPLANATION_LENGTH: deja margen de seguridad para
// TruncateExplanation. Es una indicación al modelo, no una regla validada.
const systemPrompt = "You are an expert software categorization system. " +
	"Classify software licenses into exact categories. " +
	"Provide explanations in EXACTLY 140-145 characters to allow for safety margin. " +
	"Be concise and precise. Focus on the primary function of the software."

// Prompt es el par system/user listo para una llamada de chat-completion.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt construye el prompt determinista para clasificar licenseName.
// La instrucción de usuario lista las categorías permitidas en su orden
// configurado y exige la gramática de respuesta de dos líneas
// ("Category: ..." / "Explanation: ...") sin ningún otro contenido.
func BuildPrompt(licenseName string, cats Categories) Prompt {
	user := fmt.Sprintf(`Classify this software license into ONE category from: %s

Software License: %s

Rules:
1. Choose the MOST appropriate single category
2. Explanation MUST be 140-145 characters (strictly enforced)
3. Focus on primary software function

Respond EXACTLY in this format:
Category: [category name]
Explanation: [your 140-145 character explanation]

Do not include any other text.`, strings.Join(cats.Names(), ", "), licenseName)

	return Prompt{System: systemPrompt, User: user}
}
