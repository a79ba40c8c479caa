package models

import "time"

// Submission represents a confirmed PQR intake record (a "radicado").
// It is created exactly once, when the user confirms a fully collected form,
// and is never mutated or deleted afterwards.
type Submission struct {
	// RadicadoID is the generated submission identifier, e.g. PQR-20250901120000-A1B2C3.
	RadicadoID string `gorm:"primaryKey"`
	// CreatedAt is the timestamp of the confirmation.
	CreatedAt time.Time

	Tipo         string `gorm:"type:text;index"`
	Nombre       string `gorm:"type:text"`
	Documento    string `gorm:"type:text"`
	Email        string `gorm:"type:text"`
	Telefono     string `gorm:"type:text"`
	Departamento string `gorm:"type:text;index"`
	Municipio    string `gorm:"type:text"`
	Canal        string `gorm:"type:text"`
	Descripcion  string `gorm:"type:text"`
	Autorizo     string `gorm:"type:text"`
}
