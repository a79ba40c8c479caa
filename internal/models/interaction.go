package models

import "gorm.io/gorm"

// Interaction represents one logged conversational turn in the PostgreSQL database.
// The embedded gorm.Model provides ID, CreatedAt, UpdatedAt, and DeletedAt fields;
// CreatedAt serves as the turn timestamp. Records are append-only: nothing in the
// system updates or deletes them once written.
type Interaction struct {
	gorm.Model

	// SessionID identifies the conversation the turn belongs to.
	SessionID string `gorm:"type:text;index"`
	// UserText is the raw inbound message exactly as the user sent it.
	UserText string `gorm:"type:text;not null"`
	// BotText is the reply the engine produced for this turn.
	BotText string `gorm:"type:text;not null"`
}
