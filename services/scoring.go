package services

import (
	"math"

	"smartfarm_app_go/models"
)

// ItemResult is one row of a per-item scoring breakdown.
type ItemResult struct {
	Key      string  `json:"key"`
	Title    string  `json:"title"`
	Max      int     `json:"max"`
	Obtained int     `json:"obtained"`
	Pct      float64 `json:"pct"`
}

// ScoreTotal sums the client's points over exactly the category's item set.
// Items absent from the document count as zero.
func ScoreTotal(score *models.ClientScore, category *models.ScoringCategory) int {
	total := 0
	for _, item := range category.Items {
		total += score.Scores[item.Key]
	}
	return total
}

// ScorePercentage returns the client's total as a percentage of the
// category's maximum, rounded to one decimal. The catalog guarantees a
// positive maximum for every category.
//
// Values are taken as stored: a score edited out of band can push the
// percentage outside [0, 100], which matches how earlier deployments
// behaved.
func ScorePercentage(score *models.ClientScore, category *models.ScoringCategory) float64 {
	return round1(float64(ScoreTotal(score, category)) / float64(category.TotalMax()) * 100)
}

// ScoreBreakdown returns the obtained-vs-maximum comparison for every item
// of the category, in catalog order.
func ScoreBreakdown(score *models.ClientScore, category *models.ScoringCategory) []ItemResult {
	results := make([]ItemResult, 0, len(category.Items))
	for _, item := range category.Items {
		obtained := score.Scores[item.Key]
		pct := 0.0
		if item.MaxPoints > 0 {
			pct = round1(float64(obtained) / float64(item.MaxPoints) * 100)
		}
		results = append(results, ItemResult{
			Key:      item.Key,
			Title:    item.Title,
			Max:      item.MaxPoints,
			Obtained: obtained,
			Pct:      pct,
		})
	}
	return results
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
