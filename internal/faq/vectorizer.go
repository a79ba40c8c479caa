package faq

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// vectorizer holds the term weights fitted over the corpus questions.
// Weighting is classic TF-IDF with smoothed document frequencies:
// idf(t) = ln((1+n)/(1+df(t))) + 1, vectors L2-normalized, so the cosine
// similarity of two transformed texts is their dot product.
type vectorizer struct {
	idf map[string]float64
	n   int
}

// tokenize splits text into lowercase tokens of at least two runes made of
// letters or digits. Accented characters count as letters, so Spanish
// questions tokenize naturally.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var tokens []string
	for _, w := range words {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// fitVectorizer builds the IDF table over the given documents and returns the
// fitted vectorizer together with the normalized vector of each document.
func fitVectorizer(docs []string) (*vectorizer, []map[string]float64) {
	n := len(docs)
	df := make(map[string]int)
	tokenized := make([][]string, n)

	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
		seen := make(map[string]bool)
		for _, t := range tokenized[i] {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	v := &vectorizer{idf: make(map[string]float64, len(df)), n: n}
	for t, count := range df {
		v.idf[t] = math.Log(float64(1+n)/float64(1+count)) + 1
	}

	vectors := make([]map[string]float64, n)
	for i, tokens := range tokenized {
		vectors[i] = v.weigh(tokens)
	}
	return v, vectors
}

// transform vectorizes arbitrary text with the fitted vocabulary. Terms not
// seen during fitting carry no weight. The result may be empty when nothing
// in the text overlaps the vocabulary.
func (v *vectorizer) transform(text string) map[string]float64 {
	return v.weigh(tokenize(text))
}

func (v *vectorizer) weigh(tokens []string) map[string]float64 {
	weights := make(map[string]float64)
	for _, t := range tokens {
		idf, ok := v.idf[t]
		if !ok {
			continue
		}
		weights[t] += idf
	}

	var norm float64
	for _, w := range weights {
		norm += w * w
	}
	if norm == 0 {
		return weights
	}
	norm = math.Sqrt(norm)
	for t := range weights {
		weights[t] /= norm
	}
	return weights
}

// cosine returns the cosine similarity of two normalized vectors.
func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return dot
}
