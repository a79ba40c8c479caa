package models

import "github.com/lib/pq" // Required for pq.StringArray

// FAQEntry is the persisted copy of one question/answer pair from the FAQ
// corpus. The corpus itself is fixed at startup; the table exists so the
// admin tooling can audit which answers the bot was serving.
type FAQEntry struct {
	ID       uint           `gorm:"primaryKey"`
	Question string         `gorm:"type:text;uniqueIndex;not null"`
	Answer   string         `gorm:"type:text;not null"`
	Keywords pq.StringArray `gorm:"type:text[]"` // Optional tags from the corpus file
}
