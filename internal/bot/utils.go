package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// sendMessage sends a message through the bot API
func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if b.api == nil {
		return // For testing
	}

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
	}
}

// reply is a shorthand for a plain text message to a chat
func (b *Bot) reply(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

// displayName builds a human-readable name for a Telegram user
func displayName(u *tgbotapi.User) string {
	if u == nil {
		return "N/A"
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "N/A"
	}
	return name
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.admins[userID]
}

func (b *Bot) getSupportState(userID int64) (*supportState, bool) {
	b.statesMu.RLock()
	defer b.statesMu.RUnlock()
	state, ok := b.states[userID]
	return state, ok
}

func (b *Bot) setSupportState(userID int64, state *supportState) {
	b.statesMu.Lock()
	defer b.statesMu.Unlock()
	b.states[userID] = state
}

func (b *Bot) clearSupportState(userID int64) {
	b.statesMu.Lock()
	defer b.statesMu.Unlock()
	delete(b.states, userID)
}
