package textproc

// stopWords filters common English function words out of keyword extraction.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "said": true, "each": true, "which": true,
	"she": true, "do": true, "how": true, "their": true, "if": true,
	"up": true, "out": true, "many": true, "then": true, "them": true,
	"these": true, "so": true, "some": true, "her": true, "would": true,
	"make": true, "like": true, "into": true, "him": true, "time": true,
	"two": true, "more": true, "go": true, "no": true, "way": true,
	"could": true, "my": true, "than": true, "first": true, "been": true,
	"call": true, "who": true, "oil": true, "sit": true, "now": true,
	"find": true, "down": true, "day": true, "did": true, "get": true,
	"come": true, "made": true, "may": true, "part": true,
}

// IsStopWord reports whether the lower-cased word is in the stop-word set.
func IsStopWord(word string) bool {
	return stopWords[word]
}
