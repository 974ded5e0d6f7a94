package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleSupportConversation finishes the free-form support ticket flow:
// the next message after category selection becomes the ticket body.
func (b *Bot) handleSupportConversation(ctx context.Context, message *tgbotapi.Message, state *supportState) {
	text := strings.TrimSpace(message.Text)
	if text == "" {
		b.reply(message.Chat.ID, "Please describe your issue as a text message.")
		return
	}

	userID := message.From.ID
	category := fmt.Sprintf("Support / %s", state.Category)

	ticketID, err := b.tickets.Create(ctx, userID, displayName(message.From), category, text)
	if err != nil {
		b.logger.Error("Failed to create support ticket",
			zap.Int64("user_id", userID),
			zap.String("category", category),
			zap.Error(err),
		)
		b.reply(message.Chat.ID, "❌ Error creating your ticket. Please try again in a moment.")
		return
	}

	b.clearSupportState(userID)
	b.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Ticket created!\n\n📋 Ticket ID: %s\n\nOur team will get back to you. "+
			"Track it anytime via My Tickets in /start.", ticketID))
}
