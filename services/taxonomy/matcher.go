package taxonomy

import (
	"sort"
	"strings"

	"eventhub/models"
	"eventhub/utils"
)

// Match scores; higher ranks first.
const (
	ScoreExactLabel   = 100
	ScoreLabelPrefix  = 80
	ScoreLabelContain = 60
	ScoreExactKeyword = 50
	ScoreKeyword      = 30
)

// scoreNode returns the best score of q against node's label and keywords,
// together with the text that produced it. q must already be folded.
func scoreNode(node *models.TaxonomyNode, q string) (int, string) {
	label := utils.Fold(node.Label)
	switch {
	case label == q:
		return ScoreExactLabel, node.Label
	case strings.HasPrefix(label, q):
		return ScoreLabelPrefix, node.Label
	case strings.Contains(label, q):
		return ScoreLabelContain, node.Label
	}

	best, matched := 0, ""
	for _, kw := range node.Keywords {
		k := utils.Fold(kw)
		if k == "" {
			continue
		}
		if k == q {
			return ScoreExactKeyword, kw
		}
		if best < ScoreKeyword && (strings.Contains(k, q) || strings.Contains(q, k)) {
			best, matched = ScoreKeyword, kw
		}
	}
	return best, matched
}

// Search ranks every taxonomy node matching query. Equal scores keep declaration order.
// A blank query yields an empty list.
func (t *Taxonomy) Search(query string) []models.Suggestion {
	q := utils.Fold(query)
	out := []models.Suggestion{}
	if q == "" {
		return out
	}
	for _, node := range t.flat {
		score, matched := scoreNode(node, q)
		if score == 0 {
			continue
		}
		out = append(out, models.Suggestion{
			Type:           node.Type,
			ID:             node.Type + ":" + node.ID,
			TaxonomyID:     node.ID,
			Label:          node.Label,
			Icon:           node.Icon,
			Score:          score,
			MatchedKeyword: matched,
			ParentID:       node.ParentID,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Suggest is Search capped at limit entries; limit <= 0 means no cap.
func (t *Taxonomy) Suggest(query string, limit int) []models.Suggestion {
	out := t.Search(query)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DetectService returns the id of the best-ranked service matching query.
func (t *Taxonomy) DetectService(query string) (string, bool) {
	for _, s := range t.Search(query) {
		if s.Type == models.NodeService {
			return s.TaxonomyID, true
		}
	}
	return "", false
}

// MatchesCategory reports whether query hits categoryID or any node below it.
// A blank query matches every category.
func (t *Taxonomy) MatchesCategory(categoryID, query string) bool {
	q := utils.Fold(query)
	if q == "" {
		return true
	}
	for _, node := range t.flat {
		if t.categoryOf[node.ID] != categoryID {
			continue
		}
		if score, _ := scoreNode(node, q); score > 0 {
			return true
		}
	}
	return false
}
