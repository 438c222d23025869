package services

import "strings"

// wellnessVocabulary is the fixed set of terms the extractor knows about.
// Matching is plain substring containment on the lower-cased input; there is
// no stemming, tokenization or negation handling.
var wellnessVocabulary = []string{
	"yoga",
	"meditation",
	"mindfulness",
	"stress",
	"anxiety",
	"wellness",
	"health",
	"fitness",
	"nature",
	"outdoors",
	"breathing",
	"relaxation",
	"community",
	"healing",
	"therapy",
	"mental health",
	"exercise",
	"movement",
	"peace",
	"balance",
}

// ExtractKeywords returns the vocabulary terms contained in text, in
// vocabulary order. Deterministic and side-effect free.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, keyword := range wellnessVocabulary {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}

	return found
}
