package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Licencias-api/internal/application/ports"
	"github.com/jhoicas/Licencias-api/internal/domain"
)

// Verificar en tiempo de compilación que GroqService implementa CompletionService.
var _ ports.CompletionService = (*GroqService)(nil)

// DefaultBaseURL raíz OpenAI-compatible de la API de Groq.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// GroqService adaptador que implementa CompletionService contra la API de
// chat-completions de Groq (wire-compatible con OpenAI). Usa net/http de la
// librería estándar de Go; no requiere SDK.
type GroqService struct {
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	baseURL     string
	httpClient  *http.Client
}

// Config parámetros de afinado del proveedor; se fijan en la construcción y
// el adaptador nunca los muta.
type Config struct {
	APIKey      string
	Model       string  // p. ej. "llama-3.1-8b-instant"
	Temperature float64
	MaxTokens   int
	BaseURL     string // vacío = DefaultBaseURL
}

// NewGroqService construye el adaptador. Si la API key está vacía las
// llamadas devuelven un error descriptivo en lugar de panic.
func NewGroqService(cfg Config) *GroqService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GroqService{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// Timeout de red de 25 s; la cancelación fina llega por el contexto.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo chat-completions ───────────────────────

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete envía el par system/user a Groq y devuelve el contenido textual de
// la primera elección, recortado. Todo fallo (transporte, auth, cuota,
// respuesta vacía) se envuelve en domain.ErrLLMProvider para que el caller lo
// distinga con errors.Is sin comparar mensajes.
func (s *GroqService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: GROQ_API_KEY no configurado", domain.ErrLLMProvider)
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: serializar request: %w", domain.ErrLLMProvider, err)
	}

	url := s.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: crear HTTP request: %w", domain.ErrLLMProvider, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: timeout o cancelación: %w", domain.ErrLLMProvider, ctx.Err())
		}
		return "", fmt.Errorf("%w: llamada HTTP fallida: %w", domain.ErrLLMProvider, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("%w: leer respuesta: %w", domain.ErrLLMProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("%w: Groq (%s): %s", domain.ErrLLMProvider, errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: Groq HTTP %d: %s", domain.ErrLLMProvider, resp.StatusCode, string(rawBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(rawBody, &chatResp); err != nil {
		return "", fmt.Errorf("%w: deserializar respuesta: %w", domain.ErrLLMProvider, err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: respuesta sin choices", domain.ErrLLMProvider)
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
