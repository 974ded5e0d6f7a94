package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"supportbot/internal/verify"
)

var greetingKeywords = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	"what's up", "howdy", "greetings", "hey there",
}

// handleMessage processes a single message
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleMessage", zap.Any("panic", r))
			b.reply(message.Chat.ID, "An error occurred while processing your request. Please try again.")
		}
	}()

	if message.From == nil {
		return
	}

	if message.Chat.IsGroup() || message.Chat.IsSuperGroup() {
		b.handleGroupMessage(ctx, message)
		return
	}

	if message.IsCommand() {
		// Commands interrupt any flow or conversation in progress.
		b.engine.Cancel(message.From.ID)
		b.clearSupportState(message.From.ID)
		b.handleCommand(ctx, message)
		return
	}

	user := verify.User{ID: message.From.ID, DisplayName: displayName(message.From)}
	in := inputFrom(message)

	// An open verification session consumes every non-command event.
	if reply, ok := b.engine.Handle(ctx, user, in); ok {
		b.reply(message.Chat.ID, reply.Text)
		return
	}

	// Free-form support ticket conversation.
	if state, ok := b.getSupportState(user.ID); ok {
		b.handleSupportConversation(ctx, message, state)
		return
	}

	if message.Text == "" {
		b.reply(message.Chat.ID, "📷 Photo received, but I'm not sure what it's for. Use /start to begin a process.")
		return
	}

	if isGreeting(message.Text) {
		if len(strings.Fields(message.Text)) <= 2 {
			b.reply(message.Chat.ID, "Hello! Use /start to see options.")
		} else {
			b.reply(message.Chat.ID, "How can I help? Use /start for VIP or mentorship.")
		}
		return
	}

	b.reply(message.Chat.ID, "Message received. Use /start for guided assistance.")
}

// inputFrom maps a Telegram message to a verification engine input
func inputFrom(message *tgbotapi.Message) verify.Input {
	if len(message.Photo) > 0 {
		return verify.PhotoInput{Caption: message.Caption}
	}
	return verify.TextInput{Text: message.Text}
}

func isGreeting(text string) bool {
	lower := strings.ToLower(text)
	for _, g := range greetingKeywords {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}
