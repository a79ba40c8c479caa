package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pqrchat/backend/internal/api/handler"
	"pqrchat/backend/internal/config"
	"pqrchat/backend/internal/faq"
	"pqrchat/backend/internal/intake"
	"pqrchat/backend/internal/session"
	"pqrchat/backend/internal/sink"
	"pqrchat/backend/internal/telegram"
)

func setupSink() *sink.Service {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "user"),
		getenv("DB_PASSWORD", "password"),
		getenv("DB_NAME", "pqrchatdb"),
		getenv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	recordSink := sink.NewService(db)
	if err := recordSink.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database connection established, migrations complete.")
	return recordSink
}

// setupSessions picks the session backend: Redis when REDIS_ADDR is set,
// otherwise an in-process cache.
func setupSessions() session.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		store, err := session.NewMemoryStore(config.SessionTTL)
		if err != nil {
			log.Fatalf("Failed to create memory session store: %v", err)
		}
		log.Println("Using in-memory session store.")
		return store
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}
	log.Println("Using Redis session store.")
	return session.NewRedisStore(rdb, config.SessionTTL)
}

func loadCorpus() []faq.Entry {
	path := os.Getenv("FAQ_CORPUS_PATH")
	if path == "" {
		return faq.DefaultCorpus()
	}
	entries, err := faq.LoadCorpus(path)
	if err != nil {
		log.Fatalf("Failed to load FAQ corpus: %v", err)
	}
	log.Printf("INFO: Loaded %d FAQ entries from %s", len(entries), path)
	return entries
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log.Println("Starting PQRChat Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Dependencies: record sink, FAQ retriever, sessions.
	recordSink := setupSink()
	sessions := setupSessions()

	corpus := loadCorpus()
	if err := recordSink.SeedFAQ(context.Background(), corpus); err != nil {
		log.Printf("WARNING: Failed to seed FAQ audit table: %v", err)
	}
	retriever := faq.NewRetriever(corpus, config.SimilarityThreshold)

	// 2. The shared intake engine. Every front end routes through it.
	engine := intake.NewEngine(retriever, recordSink)

	// 3. Optional Telegram host.
	if botToken := os.Getenv("TELEGRAM_BOT_TOKEN"); botToken != "" {
		botService, err := telegram.NewBotService(botToken, engine, sessions)
		if err != nil {
			log.Fatalf("Failed to start Telegram bot: %v", err)
		}
		go botService.Run()
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, Telegram host disabled.")
	}

	// 4. Gin routing: token minting, chat-widget WebSocket, form-style REST.
	r := gin.Default()
	h := handler.NewHandler(engine, sessions)

	r.GET("/token", h.GetSessionToken)
	r.GET("/ws", h.ServeWebSocket)
	r.POST("/api/message", h.PostMessage)

	server := &http.Server{
		Addr:           ":" + getenv("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    config.ServerReadTimeout,
		WriteTimeout:   config.ServerWriteTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	log.Fatal(server.ListenAndServe())
}
