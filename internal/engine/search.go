package engine

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultLimit caps results when the caller passes a non-positive limit
const DefaultLimit = 10

// Confidence scores, highest priority first
const (
	ExactMatchConfidence    = 1.0
	PrefixMatchConfidence   = 0.9
	ContainsMatchConfidence = 0.7
	WordOverlapWeight       = 0.6
)

// Candidate is anything that can be searched by name and optional brand
type Candidate interface {
	SearchName() string
	SearchBrand() string
}

// Result is a ranked candidate
type Result[T Candidate] struct {
	ID         string  `json:"id"`
	Item       T       `json:"item"`
	Confidence float64 `json:"confidence"`
}

// Rank filters candidates by case-insensitive substring match of query on
// name or brand, scores them by Confidence, sorts by descending confidence
// (stable, so equal scores keep input order) and truncates to limit.
// An empty query or empty candidate list yields an empty slice.
// A limit <= 0 is the unset zero value and means DefaultLimit, so a caller
// cannot request zero results.
func Rank[T Candidate](candidates []T, query string, limit int) []Result[T] {
	results := []Result[T]{}
	if len(candidates) == 0 || query == "" {
		return results
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := strings.ToLower(query)
	for i, c := range candidates {
		name := strings.ToLower(c.SearchName())
		if !strings.Contains(name, q) && !strings.Contains(strings.ToLower(c.SearchBrand()), q) {
			continue
		}
		results = append(results, Result[T]{
			ID:         resultID(name, i),
			Item:       c,
			Confidence: confidence(name, q),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Confidence > results[b].Confidence
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Confidence scores how well name matches query, case-insensitively.
// The first matching rule wins:
//
//	exact match             1.0
//	name starts with query  0.9
//	name contains query     0.7
//	otherwise               0.6 * (query words found inside some name word) / (query words)
func Confidence(name, query string) float64 {
	return confidence(strings.ToLower(name), strings.ToLower(query))
}

// confidence expects both arguments already lower-cased
func confidence(name, query string) float64 {
	switch {
	case name == query:
		return ExactMatchConfidence
	case strings.HasPrefix(name, query):
		return PrefixMatchConfidence
	case strings.Contains(name, query):
		return ContainsMatchConfidence
	}

	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return 0
	}
	nameWords := strings.Fields(name)
	matched := 0
	for _, qw := range queryWords {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryWords)) * WordOverlapWeight
}

// resultID derives an id from the lower-cased name with whitespace runs
// collapsed to "-", suffixed with the candidate's input position so two
// candidates sharing a name never collide.
func resultID(lowerName string, index int) string {
	slug := strings.Join(strings.Fields(lowerName), "-")
	if slug == "" {
		slug = "item"
	}
	return slug + "-" + strconv.Itoa(index)
}
