package ports

import "context"

// CompletionService define el puerto de salida hacia el proveedor LLM.
// Cualquier adaptador (Groq, OpenAI-compatible, mock) debe implementar esta
// interfaz. Siguiendo el principio de inversión de dependencias (DIP), la capa
// de aplicación solo conoce este contrato, no la implementación concreta.
type CompletionService interface {
	// Complete envía un par de prompts system/user y devuelve el texto crudo
	// del modelo. Un fallo de transporte/auth/cuota se devuelve envuelto en
	// domain.ErrLLMProvider; la cancelación viaja por el contexto.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
