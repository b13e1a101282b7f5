package bleve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

func buildTestEngine(t *testing.T) *Engine {
	t.Helper()

	items := []domain.SearchableItem{
		{
			ID:   "guideline-1",
			Code: "1",
			Type: domain.ItemTypeGuideline,
			Guideline: &domain.Guideline{
				ID:   "guideline-1",
				Code: "1",
				Name: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Captar el interés del alumnado"),
					domain.LanguageEnglish: domain.Text("Recruiting student interest"),
				},
			},
		},
		{
			ID:   "1-1",
			Code: "1.1",
			Type: domain.ItemTypeConsideration,
			Consideration: &domain.Consideration{
				ID:   "1-1",
				Code: "1.1",
				Description: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Optimizar la elección individual y la autonomía"),
				},
			},
		},
		{
			ID:   "02-SEC-LEN",
			Code: "02-SEC-LEN",
			Type: domain.ItemTypeActivity,
			Activity: &domain.Activity{
				ID:   "act-2",
				Code: "02-SEC-LEN",
				Title: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Podcast literario"),
				},
				WebTools: []domain.WebTool{{Name: "Audacity"}},
			},
		},
	}

	engine := New()
	require.NoError(t, engine.Build(context.Background(), items, domain.LanguageSpanish))
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func TestEngineFindsExactTerms(t *testing.T) {
	engine := buildTestEngine(t)

	hits, err := engine.Search(context.Background(), "podcast")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "02-SEC-LEN", hits[0].ItemID)
}

func TestEngineFuzzyMatch(t *testing.T) {
	engine := buildTestEngine(t)

	// One transposition away from "autonomía".
	hits, err := engine.Search(context.Background(), "autonomai")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "1-1", hits[0].ItemID)
}

func TestEngineScoresLowerIsBetter(t *testing.T) {
	engine := buildTestEngine(t)

	hits, err := engine.Search(context.Background(), "elección individual autonomía")
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	for i, hit := range hits {
		assert.Greater(t, hit.Score, 0.0)
		assert.LessOrEqual(t, hit.Score, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, hit.Score, hits[i-1].Score, "hits are ordered best first")
		}
	}
}

func TestEngineShortQueryReturnsNothing(t *testing.T) {
	engine := buildTestEngine(t)

	hits, err := engine.Search(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestEngineSearchBeforeBuild(t *testing.T) {
	engine := New()

	_, err := engine.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestEngineRebuildReplacesIndex(t *testing.T) {
	engine := buildTestEngine(t)

	err := engine.Build(context.Background(), []domain.SearchableItem{
		{
			ID:   "only",
			Code: "X",
			Type: domain.ItemTypePrinciple,
			Principle: &domain.Principle{
				ID: "only",
				Name: domain.MultilingualText{
					domain.LanguageSpanish: domain.Text("Representación"),
				},
			},
		},
	}, domain.LanguageSpanish)
	require.NoError(t, err)

	hits, err := engine.Search(context.Background(), "podcast")
	require.NoError(t, err)
	assert.Empty(t, hits, "old documents are gone after rebuild")
}

func TestFuzzinessScalesWithQueryLength(t *testing.T) {
	assert.Equal(t, 0, fuzzinessFor("ab"))
	assert.Equal(t, 1, fuzzinessFor("tres"))
	assert.Equal(t, 2, fuzzinessFor("autonomía"))
	assert.Equal(t, 2, fuzzinessFor("una consulta bastante larga"))
}
