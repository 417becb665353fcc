package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Groq     GroqConfig
	Classify ClassifyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GroqConfig afinado del proveedor LLM. Son entradas de solo lectura para el
// motor: identificador de modelo, temperatura de muestreo y tokens máximos.
type GroqConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	BaseURL     string
}

// ClassifyConfig parámetros del dominio de clasificación: el conjunto
// ordenado de categorías, la categoría catch-all y el límite duro de
// caracteres de la explicación.
type ClassifyConfig struct {
	Categories      []string
	DefaultCategory string
	MaxExplanation  int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, GROQ_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "license-classification-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Groq: GroqConfig{
			APIKey:      getString(v, "GROQ_API_KEY", ""),
			Model:       getString(v, "GROQ_MODEL", "llama-3.1-8b-instant"),
			Temperature: getFloat(v, "GROQ_TEMPERATURE", 0.3),
			MaxTokens:   getInt(v, "GROQ_MAX_TOKENS", 200),
			BaseURL:     getString(v, "GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		},
		Classify: ClassifyConfig{
			Categories: splitList(getString(v, "VALID_CATEGORIES",
				"Productivity,Design,Communication,Development,Finance,Marketing")),
			DefaultCategory: getString(v, "DEFAULT_CATEGORY", "Development"),
			MaxExplanation:  getInt(v, "MAX_EXPLANATION_LENGTH", 150),
		},
	}

	if cfg.Groq.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY es obligatorio")
	}
	if cfg.Classify.MaxExplanation <= 3 {
		return nil, fmt.Errorf("MAX_EXPLANATION_LENGTH debe ser mayor que 3 (marcador de elipsis incluido)")
	}

	return cfg, nil
}

// splitList separa una lista por comas conservando el orden configurado.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
