package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Licencias-api/internal/domain"
	"github.com/jhoicas/Licencias-api/internal/domain/entity"
	"github.com/jhoicas/Licencias-api/internal/infrastructure/memory"
)

func record(name, category string) *entity.Classification {
	return &entity.Classification{LicenseName: name, Category: category, Explanation: "x"}
}

func TestStore_SaveYGetPorNombreExacto(t *testing.T) {
	s := memory.NewClassificationStore()
	require.NoError(t, s.Save(record("Adobe Photoshop", "Design")))

	got, err := s.GetByName("Adobe Photoshop")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Design", got.Category)

	// La clave es opaca: ni mayúsculas ni espacios se normalizan.
	missing, err := s.GetByName("adobe photoshop")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_SaveSinNombreRechazado(t *testing.T) {
	s := memory.NewClassificationStore()
	err := s.Save(&entity.Classification{Category: "Design"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_ListPreservaOrdenDeInsercion(t *testing.T) {
	s := memory.NewClassificationStore()
	require.NoError(t, s.Save(record("Zoom", "Communication")))
	require.NoError(t, s.Save(record("Excel", "Productivity")))
	require.NoError(t, s.Save(record("Figma", "Design")))

	names, err := s.ListNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoom", "Excel", "Figma"}, names)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Zoom", list[0].LicenseName)
	assert.Equal(t, "Figma", list[2].LicenseName)
}

func TestStore_UpsertConservaPosicion(t *testing.T) {
	s := memory.NewClassificationStore()
	require.NoError(t, s.Save(record("Zoom", "Communication")))
	require.NoError(t, s.Save(record("Excel", "Productivity")))
	require.NoError(t, s.Save(record("Zoom", "Productivity"))) // reemplazo

	names, _ := s.ListNames()
	assert.Equal(t, []string{"Zoom", "Excel"}, names, "el upsert no duplica ni reordena la clave")

	got, _ := s.GetByName("Zoom")
	assert.Equal(t, "Productivity", got.Category)

	n, _ := s.Count()
	assert.Equal(t, 2, n)
}

func TestStore_DeleteDevuelveElRegistro(t *testing.T) {
	s := memory.NewClassificationStore()
	require.NoError(t, s.Save(record("Slack", "Communication")))

	deleted, err := s.Delete("Slack")
	require.NoError(t, err)
	assert.Equal(t, "Slack", deleted.LicenseName)

	_, err = s.Delete("Slack")
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar dos veces debe fallar con ErrNotFound")

	names, _ := s.ListNames()
	assert.Empty(t, names)
}

func TestStore_Clear(t *testing.T) {
	s := memory.NewClassificationStore()
	require.NoError(t, s.Save(record("A", "Design")))
	require.NoError(t, s.Save(record("B", "Finance")))

	removed, err := s.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	n, _ := s.Count()
	assert.Equal(t, 0, n)

	list, _ := s.List()
	assert.Empty(t, list)
}

func TestStore_AccesoConcurrenteSeguro(t *testing.T) {
	s := memory.NewClassificationStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.Save(record(fmt.Sprintf("lic-%d", i), "Development"))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.List()
		}()
	}
	wg.Wait()

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
