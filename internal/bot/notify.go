package bot

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"supportbot/internal/models"
	"supportbot/internal/ticket"
)

// GroupNotifier delivers ticket announcements to connected groups. It is
// created unbound so the materializer can be wired before the bot API
// exists; until Bind is called it silently drops notifications.
type GroupNotifier struct {
	mu     sync.RWMutex
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

func NewGroupNotifier(logger *zap.Logger) *GroupNotifier {
	return &GroupNotifier{logger: logger}
}

// Bind attaches the bot API once it has been created.
func (n *GroupNotifier) Bind(api *tgbotapi.BotAPI) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.api = api
}

// Notify sends the ticket announcement to one group.
func (n *GroupNotifier) Notify(ctx context.Context, group models.Group, notif ticket.Notification) error {
	n.mu.RLock()
	api := n.api
	n.mu.RUnlock()
	if api == nil {
		return nil // For testing and pre-bind startup
	}

	text := fmt.Sprintf(
		"🚨 New Ticket\n\n"+
			"📋 ID: %s\n"+
			"📂 Category: %s\n"+
			"👤 User: %s\n\n"+
			"%s",
		notif.TicketID, notif.Category, notif.DisplayName, notif.Description)

	msg := tgbotapi.NewMessage(group.GroupID, text)
	if _, err := api.Send(msg); err != nil {
		return fmt.Errorf("notify group %d: %w", group.GroupID, err)
	}
	return nil
}
