package taxonomy

import (
	"testing"

	"eventhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(suggestions []models.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.TaxonomyID)
	}
	return out
}

func TestSearchBlankQuery(t *testing.T) {
	tx := Default()
	for _, q := range []string{"", "   ", "\t"} {
		got := tx.Search(q)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSearchPhotographer(t *testing.T) {
	tx := Default()

	got := tx.Search("photographer")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"photographers", "photography", "photography-video"}, ids(got))

	assert.Equal(t, ScoreLabelPrefix, got[0].Score)
	assert.Equal(t, models.NodeSubcategory, got[0].Type)
	assert.Equal(t, "subcategory:photographers", got[0].ID)

	assert.Equal(t, ScoreExactKeyword, got[1].Score)
	assert.Equal(t, "photographer", got[1].MatchedKeyword)
	assert.Equal(t, "photographers", got[1].ParentID)

	assert.Equal(t, ScoreKeyword, got[2].Score)
	assert.Equal(t, "photo", got[2].MatchedKeyword)
}

func TestSearchIsCaseAndAccentInsensitive(t *testing.T) {
	tx := Default()
	assert.Equal(t, ids(tx.Search("photographer")), ids(tx.Search("  PHOTOGRÁPHER ")))
}

func TestSearchExactLabelWins(t *testing.T) {
	tx := Default()
	got := tx.Search("dj")
	require.NotEmpty(t, got)
	assert.Equal(t, "dj", got[0].TaxonomyID)
	assert.Equal(t, ScoreExactLabel, got[0].Score)
}

func TestSearchTiesKeepDeclarationOrder(t *testing.T) {
	tx := Default()
	got := tx.Search("decor")
	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, []string{"decor-venues", "decorators", "decoration", "floral-decor"}, ids(got)[:4])
	assert.Equal(t, ScoreLabelPrefix, got[0].Score)
	assert.Equal(t, ScoreLabelContain, got[3].Score)
}

func TestSearchScoresAreNonIncreasing(t *testing.T) {
	tx := Default()
	for _, q := range []string{"photo", "wedding", "band", "cake", "a"} {
		got := tx.Search(q)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score, "query %q", q)
		}
	}
}

func TestSuggestLimit(t *testing.T) {
	tx := Default()
	assert.Len(t, tx.Suggest("a", 5), 5)
	assert.Equal(t, len(tx.Search("a")), len(tx.Suggest("a", 0)))
}

func TestDetectService(t *testing.T) {
	tx := Default()

	svc, ok := tx.DetectService("photographer")
	require.True(t, ok)
	assert.Equal(t, "photography", svc)

	svc, ok = tx.DetectService("cater")
	require.True(t, ok)
	assert.Equal(t, "catering", svc)

	_, ok = tx.DetectService("zzzz")
	assert.False(t, ok)

	_, ok = tx.DetectService("")
	assert.False(t, ok)
}

func TestMatchesCategory(t *testing.T) {
	tx := Default()
	assert.True(t, tx.MatchesCategory("food-beverage", "cake"))
	assert.False(t, tx.MatchesCategory("food-beverage", "dj"))
	assert.True(t, tx.MatchesCategory("entertainment", ""))
}
