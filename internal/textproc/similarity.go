package textproc

// SimilarityScore computes the Jaccard similarity of the two texts' keyword
// sets, in [0,1]. Empty input or an empty keyword set on either side yields
// 0.0 rather than an error.
func SimilarityScore(text1, text2 string) float64 {
	if text1 == "" || text2 == "" {
		return 0.0
	}

	kw1 := ExtractKeywords(text1, DefaultMinKeywordLength)
	kw2 := ExtractKeywords(text2, DefaultMinKeywordLength)
	if len(kw1) == 0 || len(kw2) == 0 {
		return 0.0
	}

	set1 := make(map[string]bool, len(kw1))
	for _, kw := range kw1 {
		set1[kw] = true
	}

	intersection := 0
	for _, kw := range kw2 {
		if set1[kw] {
			intersection++
		}
	}
	union := len(kw1) + len(kw2) - intersection

	return float64(intersection) / float64(union)
}
