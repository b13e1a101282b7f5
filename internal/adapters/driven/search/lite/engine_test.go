package lite

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
					domain.LanguageSpanish: domain.Text("Captar el interés"),
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
			},
		},
	}

	engine := New()
	require.NoError(t, engine.Build(context.Background(), items, domain.LanguageSpanish))
	return engine
}

func TestLiteEngineMatches(t *testing.T) {
	engine := buildTestEngine(t)

	hits, err := engine.Search(context.Background(), "podcast")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "02-SEC-LEN", hits[0].ItemID)
}

func TestLiteEngineSubsequenceMatch(t *testing.T) {
	engine := buildTestEngine(t)

	// Characters in order but not contiguous still match.
	hits, err := engine.Search(context.Background(), "pdcst")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "02-SEC-LEN", hits[0].ItemID)
}

func TestLiteEngineScoreBounds(t *testing.T) {
	engine := buildTestEngine(t)

	hits, err := engine.Search(context.Background(), "interés")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for i, hit := range hits {
		assert.Greater(t, hit.Score, 0.0)
		assert.LessOrEqual(t, hit.Score, 1.0)
		if i > 0 {
			assert.GreaterOrEqual(t, hit.Score, hits[i-1].Score)
		}
	}
}

func TestLiteEngineShortQuery(t *testing.T) {
	engine := buildTestEngine(t)

	hits, err := engine.Search(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestLiteEngineBeforeBuild(t *testing.T) {
	engine := New()

	_, err := engine.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestLiteEngineCloseResets(t *testing.T) {
	engine := buildTestEngine(t)
	require.NoError(t, engine.Close())

	_, err := engine.Search(context.Background(), "podcast")
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}
