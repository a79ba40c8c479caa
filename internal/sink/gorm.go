package sink

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"pqrchat/backend/internal/faq"
	"pqrchat/backend/internal/intake"
	"pqrchat/backend/internal/models"
)

// Service is the PostgreSQL-backed record sink. It implements intake.Sink.
type Service struct {
	DB *gorm.DB
}

// NewService creates the sink over an open gorm connection.
func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Migrate creates or updates the record tables.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.Interaction{},
		&models.Submission{},
		&models.FAQEntry{},
	)
}

// AppendInteraction durably appends one conversational turn. Callers treat a
// failure as non-fatal: the conversation continues without the log entry.
func (s *Service) AppendInteraction(ctx context.Context, sessionID, userText, botText string) error {
	record := models.Interaction{
		SessionID: sessionID,
		UserText:  userText,
		BotText:   botText,
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}
	return nil
}

// AppendSubmission durably appends one confirmed submission and returns its
// generated radicado identifier. On error no identifier is returned, so the
// caller can never report a submission that was not actually written.
func (s *Service) AppendSubmission(ctx context.Context, form intake.Form) (string, error) {
	values := form.Values()
	record := models.Submission{
		RadicadoID:   NewRadicadoID(time.Now()),
		Tipo:         values[0],
		Nombre:       values[1],
		Documento:    values[2],
		Email:        values[3],
		Telefono:     values[4],
		Departamento: values[5],
		Municipio:    values[6],
		Canal:        values[7],
		Descripcion:  values[8],
		Autorizo:     values[9],
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to append submission: %w", err)
	}
	return record.RadicadoID, nil
}

// SeedFAQ mirrors the startup FAQ corpus into the database so the admin
// tooling can audit the answers the bot serves. Existing questions are left
// untouched.
func (s *Service) SeedFAQ(ctx context.Context, entries []faq.Entry) error {
	for _, e := range entries {
		record := models.FAQEntry{
			Question: e.Question,
			Answer:   e.Answer,
			Keywords: pq.StringArray(e.Keywords),
		}
		result := s.DB.WithContext(ctx).
			Where("question = ?", e.Question).
			FirstOrCreate(&record)
		if result.Error != nil {
			return fmt.Errorf("failed to seed FAQ entry %q: %w", e.Question, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("INFO: Seeded FAQ entry %q", e.Question)
		}
	}
	return nil
}
