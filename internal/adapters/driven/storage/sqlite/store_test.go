package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleActivity(code string) domain.Activity {
	return domain.Activity{
		ID:   "act-" + code,
		Code: code,
		Title: domain.MultilingualText{
			domain.LanguageSpanish: domain.Text("Título " + code),
			domain.LanguageEnglish: domain.Text("Title " + code),
		},
		Description: domain.MultilingualText{
			domain.LanguageSpanish: domain.Text("Descripción"),
		},
		GradeLevel: domain.MultilingualText{
			domain.LanguageSpanish: domain.Text("Primaria"),
		},
		Subject: domain.MultilingualText{
			domain.LanguageSpanish: domain.Text("Matemáticas"),
		},
		WebTools: []domain.WebTool{
			{Name: "GeoGebra", URL: "https://www.geogebra.org"},
		},
	}
}

func TestActivityStorePutAndList(t *testing.T) {
	store := newTestStore(t)
	activities := store.ActivityStore()
	ctx := context.Background()

	require.NoError(t, activities.Put(ctx, sampleActivity("01-PRI-MAT")))
	require.NoError(t, activities.Put(ctx, sampleActivity("02-SEC-LEN")))

	listed, err := activities.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, "01-PRI-MAT", listed[0].Code)
	assert.Equal(t, "02-SEC-LEN", listed[1].Code)
	assert.Equal(t, "Título 01-PRI-MAT", listed[0].Title.Label())
	assert.Equal(t, "Title 01-PRI-MAT", listed[0].Title.T(domain.LanguageEnglish))
	assert.Equal(t, "GeoGebra", listed[0].WebTools[0].Name)
}

func TestActivityStorePutReplacesByCode(t *testing.T) {
	store := newTestStore(t)
	activities := store.ActivityStore()
	ctx := context.Background()

	require.NoError(t, activities.Put(ctx, sampleActivity("01-PRI-MAT")))

	updated := sampleActivity("01-PRI-MAT")
	updated.Title = domain.MultilingualText{
		domain.LanguageSpanish: domain.Text("Título revisado"),
	}
	require.NoError(t, activities.Put(ctx, updated))

	listed, err := activities.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Título revisado", listed[0].Title.Label())
}

func TestActivityStoreRejectsEmptyCode(t *testing.T) {
	store := newTestStore(t)

	err := store.ActivityStore().Put(context.Background(), domain.Activity{ID: "act-x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActivityStoreEmptyList(t *testing.T) {
	store := newTestStore(t)

	listed, err := store.ActivityStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestActivityStoreNoWebTools(t *testing.T) {
	store := newTestStore(t)
	activities := store.ActivityStore()
	ctx := context.Background()

	activity := sampleActivity("03-INF-ART")
	activity.WebTools = nil
	require.NoError(t, activities.Put(ctx, activity))

	listed, err := activities.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].WebTools)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ActivityStore().Put(context.Background(), sampleActivity("01-PRI-MAT")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	listed, err := reopened.ActivityStore().List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "01-PRI-MAT", listed[0].Code)
}
