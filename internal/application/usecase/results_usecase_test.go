package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licencias-api/internal/application/dto"
	"github.com/jhoicas/Licencias-api/internal/application/usecase"
	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/classify"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/memory"
)

func resultsUC(t *testing.T) *usecase.ResultsUseCase {
	t.Helper()
	cats, err := classify.NewCategories(
		[]string{"Productivity", "Design", "Communication", "Development", "Finance", "Marketing"},
		"Development",
	)
	require.NoError(t, err)
	return usecase.NewResultsUseCase(memory.NewClassificationStore(), cats, 150)
}

func seed(t *testing.T, uc *usecase.ResultsUseCase, items ...*entity.Classification) {
	t.Helper()
	require.NoError(t, uc.SaveAll(items))
}

func TestResults_ListYGet(t *testing.T) {
	uc := resultsUC(t)
	seed(t, uc,
		&entity.Classification{LicenseName: "Figma", Category: "Design", Explanation: "ui"},
		&entity.Classification{LicenseName: "Slack", Category: "Communication", Explanation: "chat"},
	)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Figma", list[0].LicenseName)

	got, err := uc.GetByName("Slack")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Communication", got.Category)

	missing, err := uc.GetByName("Photoshop")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResults_UpdateReemplazaCompleto(t *testing.T) {
	uc := resultsUC(t)
	seed(t, uc, &entity.Classification{LicenseName: "Figma", Category: "Development", Explanation: "old"})

	out, err := uc.Update("Figma", dto.UpdateLicenseRequest{Category: "Design", Explanation: "vector design tool"})
	require.NoError(t, err)
	assert.Equal(t, "Design", out.Category)
	assert.Equal(t, "vector design tool", out.Explanation)
}

func TestResults_UpdateSanitizaExplicacion(t *testing.T) {
	uc := resultsUC(t)
	seed(t, uc, &entity.Classification{LicenseName: "Figma", Category: "Design", Explanation: "old"})

	out, err := uc.Update("Figma", dto.UpdateLicenseRequest{
		Category:    "Design",
		Explanation: strings.Repeat("z", 200),
	})
	require.NoError(t, err)
	assert.Len(t, []rune(out.Explanation), 150, "el límite duro aplica también a la entrada manual")
	assert.True(t, strings.HasSuffix(out.Explanation, "..."))
}

func TestResults_UpdateCategoriaInvalida(t *testing.T) {
	uc := resultsUC(t)
	seed(t, uc, &entity.Classification{LicenseName: "Figma", Category: "Design", Explanation: "x"})

	_, err := uc.Update("Figma", dto.UpdateLicenseRequest{Category: "Gaming", Explanation: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestResults_UpdateLicenciaInexistente(t *testing.T) {
	uc := resultsUC(t)
	_, err := uc.Update("Nada", dto.UpdateLicenseRequest{Category: "Design", Explanation: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResults_DeleteYClear(t *testing.T) {
	uc := resultsUC(t)
	seed(t, uc,
		&entity.Classification{LicenseName: "A", Category: "Finance", Explanation: "x"},
		&entity.Classification{LicenseName: "B", Category: "Finance", Explanation: "y"},
	)

	deleted, err := uc.Delete("A")
	require.NoError(t, err)
	assert.Equal(t, "A", deleted.LicenseName)

	_, err = uc.Delete("A")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err := uc.Clear()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestResults_Stats(t *testing.T) {
	uc := resultsUC(t)
	seed(t, uc,
		&entity.Classification{LicenseName: "Figma", Category: "Design", Explanation: "x"},
		&entity.Classification{LicenseName: "Sketch", Category: "Design", Explanation: "y"},
		&entity.Classification{LicenseName: "Slack", Category: "Communication", Explanation: "z"},
	)

	stats, err := uc.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalLicenses)
	assert.Equal(t, map[string]int{"Design": 2, "Communication": 1}, stats.CategoryDistribution)
	assert.Equal(t, []string{"Figma", "Sketch", "Slack"}, stats.Licenses)
}

func TestResults_StatsVacio(t *testing.T) {
	uc := resultsUC(t)

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalLicenses)
	assert.Empty(t, stats.CategoryDistribution)
	assert.Empty(t, stats.Licenses)
}
