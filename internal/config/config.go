package config

import "time"

const (
	// FAQ retrieval
	SimilarityThreshold = 0.35

	// Radicado identifiers
	RadicadoPrefix     = "PQR"
	RadicadoTimeLayout = "20060102150405"
	RadicadoSuffixLen  = 6

	// Sessions
	SessionTTL = 30 * time.Minute

	// Auth
	TokenTTL  = 72 * time.Hour
	JWTIssuer = "pqrchat-service"

	// HTTP server
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	MaxHeaderBytes     = 1 << 20
)
