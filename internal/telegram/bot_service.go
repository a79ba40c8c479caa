// Package telegram hosts the intake conversation behind the Telegram Bot API.
// It is a thin adapter: one session per chat, every text update relayed
// through the shared intake engine.
package telegram

import (
	"context"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pqrchat/backend/internal/intake"
	"pqrchat/backend/internal/session"
)

// BotService long-polls Telegram updates and routes them to the engine.
type BotService struct {
	BotAPI   *tgbotapi.BotAPI
	Engine   *intake.Engine
	Sessions session.Store
}

// NewBotService creates a new BotService instance.
func NewBotService(token string, engine *intake.Engine, sessions session.Store) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("INFO: Authorized on Telegram account %s", bot.Self.UserName)

	return &BotService{
		BotAPI:   bot,
		Engine:   engine,
		Sessions: sessions,
	}, nil
}

// sessionIDFor namespaces Telegram chats apart from the web front ends.
func sessionIDFor(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

// Run consumes the update channel until the process exits. Each text update
// is one synchronous engine turn.
func (s *BotService) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range s.BotAPI.GetUpdatesChan(u) {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		s.handleUpdate(update.Message)
	}
}

func (s *BotService) handleUpdate(msg *tgbotapi.Message) {
	ctx := context.Background()
	chatID := msg.Chat.ID
	sessionID := sessionIDFor(chatID)

	// /start opens a fresh conversation with the welcome greeting, the way
	// the chat widget greets on connect.
	if msg.Text == "/start" {
		if err := s.Sessions.Delete(ctx, sessionID); err != nil {
			log.Printf("ERROR: Failed to clear session %s: %v", sessionID, err)
		}
		s.send(chatID, intake.PromptWelcome)
		return
	}

	st, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR: Failed to load session %s: %v", sessionID, err)
		return
	}

	reply := s.Engine.Handle(ctx, sessionID, msg.Text, st)

	if err := s.Sessions.Put(ctx, sessionID, st); err != nil {
		log.Printf("ERROR: Failed to save session %s: %v", sessionID, err)
	}

	s.send(chatID, reply)
}

func (s *BotService) send(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	if _, err := s.BotAPI.Send(reply); err != nil {
		log.Printf("ERROR: Failed to send Telegram message to chat %d: %v", chatID, err)
	}
}
