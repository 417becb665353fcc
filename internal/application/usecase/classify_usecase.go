package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Licencias-api/internal/application/ports"
	"github.com/jhoicas/Licencias-api/internal/domain/classify"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
)

// fallbackExplanation acompaña al registro de respaldo cuando la llamada al
// proveedor falla dentro de un lote.
const fallbackExplanation = "Classification error occurred. Default category assigned."

// ClassifyUseCase es el motor de clasificación: construye el prompt, invoca
// el proveedor LLM y valida la respuesta. No guarda estado ni referencia al
// almacén; solo produce registros. No impone timeout propio: ese es trabajo
// del adaptador de proveedor (y de la cancelación vía contexto del caller).
type ClassifyUseCase struct {
	llm            ports.CompletionService
	cats           classify.Categories
	maxExplanation int
}

// NewClassifyUseCase construye el motor inyectando el puerto de completion,
// el conjunto de categorías y el límite duro de longitud de explicación.
func NewClassifyUseCase(llm ports.CompletionService, cats classify.Categories, maxExplanation int) *ClassifyUseCase {
	return &ClassifyUseCase{llm: llm, cats: cats, maxExplanation: maxExplanation}
}

// Classify clasifica una licencia con una llamada al proveedor.
// Un fallo del proveedor se propaga al caller (envuelto en
// domain.ErrLLMProvider por el adaptador); los fallos de formato de la
// respuesta NUNCA son error: ParseResponse los recupera en silencio.
func (uc *ClassifyUseCase) Classify(ctx context.Context, licenseName string) (*entity.Classification, error) {
	prompt := classify.BuildPrompt(licenseName, uc.cats)

	raw, err := uc.llm.Complete(ctx, prompt.System, prompt.User)
	if err != nil {
		return nil, fmt.Errorf("clasificar %q: %w", licenseName, err)
	}

	res := classify.ParseResponse(raw, uc.cats)

	return &entity.Classification{
		LicenseName: licenseName,
		Category:    res.Category,
		Explanation: classify.TruncateExplanation(res.Explanation, uc.maxExplanation),
	}, nil
}

// ClassifyMany clasifica una secuencia de licencias de forma secuencial.
// Aísla los fallos por elemento: si Classify falla para una licencia se
// sustituye un registro de respaldo (categoría por defecto + explicación de
// error) y el lote continúa. Nunca devuelve error y el resultado tiene
// exactamente la misma longitud y orden que la entrada.
func (uc *ClassifyUseCase) ClassifyMany(ctx context.Context, licenseNames []string) []*entity.Classification {
	results := make([]*entity.Classification, 0, len(licenseNames))

	for _, name := range licenseNames {
		c, err := uc.Classify(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("license", name).Msg("clasificación degradada a registro de respaldo")
			c = &entity.Classification{
				LicenseName: name,
				Category:    uc.cats.Default(),
				Explanation: fallbackExplanation,
			}
		}
		results = append(results, c)
	}

	return results
}
