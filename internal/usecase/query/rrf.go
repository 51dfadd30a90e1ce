package query

import (
	"sort"

	"github.com/kailas-cloud/supportdesk/internal/domain"
)

// rrfK is the Reciprocal Rank Fusion constant (standard value from Cormack et al. 2009).
const rrfK = 60

// fuseRRF merges vector and lexical rankings via Reciprocal Rank Fusion.
// score(d) = sum of 1/(k + rank_i(d)) for each ranking where d appears.
// Equal scores keep first-seen order, vector ranking first.
func fuseRRF(vector, lexical []domain.ScoredDocument, topK int) []domain.ScoredDocument {
	merged := make(map[string]int, len(vector)+len(lexical))
	fused := make([]domain.ScoredDocument, 0, len(vector)+len(lexical))

	add := func(ranking []domain.ScoredDocument) {
		for rank, d := range ranking {
			s := 1.0 / float64(rrfK+rank+1)
			if i, ok := merged[d.ID]; ok {
				fused[i].Score += s
				continue
			}
			merged[d.ID] = len(fused)
			fused = append(fused, domain.ScoredDocument{Document: d.Document, Score: s})
		}
	}
	add(vector)
	add(lexical)

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score > fused[j].Score
	})

	if len(fused) > topK {
		fused = fused[:topK]
	}
	return fused
}
