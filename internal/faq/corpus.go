// Package faq provides the canned-answer retriever used while the intake
// conversation is still at its welcome step. The corpus is a small fixed set
// of question/answer pairs loaded once at startup; nothing is added, removed,
// or re-weighted at runtime.
package faq

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Entry is one immutable question/answer pair of the FAQ corpus.
type Entry struct {
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Keywords []string `yaml:"keywords,omitempty"`
}

type corpusFile struct {
	FAQ []Entry `yaml:"faq"`
}

// DefaultCorpus returns the built-in corpus used when no corpus file is
// configured.
func DefaultCorpus() []Entry {
	return []Entry{
		{
			Question: "¿Qué es una PQR?",
			Answer:   "PQR significa Petición, Queja, Reclamo o Sugerencia.",
		},
		{
			Question: "¿Cómo radicar una PQR?",
			Answer:   "Te guiaré paso a paso con tus datos y descripción.",
		},
		{
			Question: "¿Cuánto tardan en responder?",
			Answer:   "Entre 15 y 30 días hábiles normalmente.",
		},
	}
}

// LoadCorpus reads a YAML corpus file of the form:
//
//	faq:
//	  - question: "..."
//	    answer: "..."
//	    keywords: [tag1, tag2]
//
// Every entry must carry a non-empty question and answer.
func LoadCorpus(path string) ([]Entry, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FAQ corpus file: %w", err)
	}

	var file corpusFile
	if err := yaml.Unmarshal(input, &file); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ corpus file %s: %w", path, err)
	}
	if len(file.FAQ) == 0 {
		return nil, fmt.Errorf("FAQ corpus file %s contains no entries", path)
	}
	for i, e := range file.FAQ {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("FAQ corpus entry %d is missing a question or answer", i)
		}
	}
	return file.FAQ, nil
}
