package services

import (
	"testing"

	"smartfarm_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreTotalAndPercentage(t *testing.T) {
	granos, _ := models.CategoryByName(models.CategoryGranos)

	t.Run("all zero", func(t *testing.T) {
		score := newTestScore("1", "A", models.CategoryGranos, nil)
		assert.Equal(t, 0, ScoreTotal(score, granos))
		assert.Equal(t, 0.0, ScorePercentage(score, granos))
	})

	t.Run("single item at maximum", func(t *testing.T) {
		score := newTestScore("1", "A", models.CategoryGranos, map[string]int{"GR_Item_3": 10})
		assert.Equal(t, 10, ScoreTotal(score, granos))
		// 10 of 150, rounded to one decimal
		assert.Equal(t, 6.7, ScorePercentage(score, granos))
	})

	t.Run("perfect score", func(t *testing.T) {
		overrides := map[string]int{}
		for _, item := range granos.Items {
			overrides[item.Key] = item.MaxPoints
		}
		score := newTestScore("1", "A", models.CategoryGranos, overrides)
		assert.Equal(t, 150, ScoreTotal(score, granos))
		assert.Equal(t, 100.0, ScorePercentage(score, granos))
	})

	t.Run("missing items count as zero", func(t *testing.T) {
		score := &models.ClientScore{Scores: map[string]int{"GR_Item_1": 5}}
		assert.Equal(t, 5, ScoreTotal(score, granos))
	})

	t.Run("out of band values pass through", func(t *testing.T) {
		// An externally edited document can exceed the catalog maximum;
		// aggregation reports it as stored instead of clamping.
		score := &models.ClientScore{Scores: map[string]int{"GR_Item_1": 300}}
		assert.Equal(t, 300, ScoreTotal(score, granos))
		assert.Equal(t, 200.0, ScorePercentage(score, granos))
	})
}

func TestScoreBreakdown(t *testing.T) {
	granos, _ := models.CategoryByName(models.CategoryGranos)
	score := newTestScore("1", "A", models.CategoryGranos, map[string]int{
		"GR_Item_3": 10, // max 10
		"GR_Item_4": 5,  // max 15
	})

	breakdown := ScoreBreakdown(score, granos)
	assert.Len(t, breakdown, 16)

	// Catalog order is preserved
	assert.Equal(t, "GR_Item_1", breakdown[0].Key)
	assert.Equal(t, 0, breakdown[0].Obtained)
	assert.Equal(t, 0.0, breakdown[0].Pct)

	assert.Equal(t, "GR_Item_3", breakdown[2].Key)
	assert.Equal(t, 10, breakdown[2].Obtained)
	assert.Equal(t, 10, breakdown[2].Max)
	assert.Equal(t, 100.0, breakdown[2].Pct)

	assert.Equal(t, "GR_Item_4", breakdown[3].Key)
	assert.Equal(t, 33.3, breakdown[3].Pct)
}

func TestScoringEndToEnd(t *testing.T) {
	store, cfg := setupServiceTest(t)

	score := newTestScore("123456", "Estancia La Paz", models.CategoryGranos, map[string]int{"GR_Item_3": 10})
	assert.NoError(t, CreateClientScore(store, cfg, score))

	stored, err := GetClientScore(store, cfg, "123456")
	assert.NoError(t, err)

	granos, _ := models.CategoryByName(stored.Category)
	assert.Equal(t, 10, ScoreTotal(stored, granos))
	assert.Equal(t, 150, granos.TotalMax())
	assert.Equal(t, 6.7, ScorePercentage(stored, granos))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hola", CleanText("  <b>hola</b>  ", 0))
	assert.Equal(t, "hola", CleanText("hola<script>alert(1)</script>", 0))
	assert.Equal(t, "ho", CleanText("hola", 2))
	assert.Equal(t, "", CleanText("   ", 10))
	// Truncation counts runes, not bytes
	assert.Equal(t, "ñá", CleanText("ñáé", 2))
}
