// internal/assistant/classifier.go
package assistant

import "strings"

// domainKeywords is the fixed topical gate. A question is in-domain iff
// it contains at least one of these, case-insensitively. This is a
// coarse substring check, not a semantic classifier; false positives
// and negatives are an accepted trade-off.
var domainKeywords = []string{
	"menu", "item", "dish", "burger", "sandwich", "drink", "dessert",
	"sweet", "savory", "price", "rating", "review", "comment",
	"best", "recommend", "order", "restaurant", "nesscute",
}

// Relevant reports whether the question falls inside the supported
// topic set. Empty or keyword-free text is rejected.
func Relevant(question string) bool {
	q := strings.ToLower(question)
	if q == "" {
		return false
	}

	for _, keyword := range domainKeywords {
		if strings.Contains(q, keyword) {
			return true
		}
	}
	return false
}
