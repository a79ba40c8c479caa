package faq

import "strings"

// Retriever answers free-text questions by 1-nearest-neighbor lookup over the
// TF-IDF vectors of the corpus questions. It is immutable after construction
// and safe for concurrent use.
type Retriever struct {
	entries   []Entry
	vec       *vectorizer
	vectors   []map[string]float64
	threshold float64
}

// NewRetriever fits the vectorizer over the corpus questions and indexes them.
// threshold is the minimum cosine similarity below which no answer is surfaced.
func NewRetriever(entries []Entry, threshold float64) *Retriever {
	questions := make([]string, len(entries))
	for i, e := range entries {
		questions[i] = e.Question
	}
	vec, vectors := fitVectorizer(questions)
	return &Retriever{
		entries:   entries,
		vec:       vec,
		vectors:   vectors,
		threshold: threshold,
	}
}

// Retrieve maps msg to the answer of the nearest corpus question, or reports
// false when msg is blank or the best similarity falls below the threshold.
// Ties keep the first corpus entry, so results are deterministic.
func (r *Retriever) Retrieve(msg string) (string, bool) {
	if strings.TrimSpace(msg) == "" {
		return "", false
	}

	query := r.vec.transform(msg)
	if len(query) == 0 {
		return "", false
	}

	best := -1
	bestSim := 0.0
	for i, doc := range r.vectors {
		sim := cosine(query, doc)
		if best == -1 || sim > bestSim {
			best = i
			bestSim = sim
		}
	}

	if best == -1 || bestSim < r.threshold {
		return "", false
	}
	return r.entries[best].Answer, true
}

// Entries returns the corpus the retriever was built from.
func (r *Retriever) Entries() []Entry {
	return r.entries
}
