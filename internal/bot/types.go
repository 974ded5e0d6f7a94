package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"supportbot/internal/storage"
	"supportbot/internal/verify"
)

// Config carries the transport-level settings: who may run staff
// commands and the links surfaced in menus.
type Config struct {
	AdminUserIDs    []int64
	AffiliateLink   string
	TaggingGuideURL string
	AdminContactURL string
}

// Bot represents the Telegram bot wrapper
type Bot struct {
	api      *tgbotapi.BotAPI
	db       storage.Storage
	engine   *verify.Engine
	tickets  verify.TicketCreator
	admins   map[int64]bool
	states   map[int64]*supportState
	statesMu sync.RWMutex
	cfg      Config
	logger   *zap.Logger
}

// supportState tracks the free-form support ticket conversation. The
// verification flows keep their own state inside the engine.
type supportState struct {
	Category string
}
