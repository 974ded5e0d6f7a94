package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"supportbot/internal/storage"
	"supportbot/internal/verify"
)

// NewBot creates a new Telegram bot
func NewBot(token string, db storage.Storage, engine *verify.Engine, tickets verify.TicketCreator, cfg Config, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	admins := make(map[int64]bool)
	for _, id := range cfg.AdminUserIDs {
		admins[id] = true
	}

	logger.Info("Bot created", zap.String("bot_username", api.Self.UserName))

	return &Bot{
		api:     api,
		db:      db,
		engine:  engine,
		tickets: tickets,
		admins:  admins,
		states:  make(map[int64]*supportState),
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// GetAPI returns the bot API for testing
func (b *Bot) GetAPI() *tgbotapi.BotAPI {
	return b.api
}
