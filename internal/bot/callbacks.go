package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"supportbot/internal/models"
	"supportbot/internal/storage"
	"supportbot/internal/verify"
)

// handleCallbackQuery processes inline keyboard button clicks
func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleCallbackQuery", zap.Any("panic", r))
		}
	}()

	// Answer the callback query to remove loading state
	if b.api != nil {
		if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
			b.logger.Warn("Failed to answer callback query",
				zap.String("callback_id", query.ID), zap.Error(err))
		}
	}

	if query.Message == nil || query.From == nil {
		return
	}
	chatID := query.Message.Chat.ID
	user := verify.User{ID: query.From.ID, DisplayName: displayName(query.From)}

	data := query.Data
	switch {
	case data == "select_vip_type":
		b.sendVIPTypeMenu(chatID)
	case data == "vip_deriv_start":
		b.startFlow(chatID, user, verify.FlowDerivVIP)
	case data == "vip_currencies_start":
		b.sendCurrenciesMenu(chatID)
	case data == "currencies_octa_start":
		b.startFlow(chatID, user, verify.FlowCurrenciesOcta)
	case data == "currencies_vantage_start":
		b.startFlow(chatID, user, verify.FlowCurrenciesVantage)
	case data == "free_mentorship_start":
		b.startFlow(chatID, user, verify.FlowMentorship)
	case data == "my_tickets":
		b.sendMyTickets(ctx, chatID, user.ID)
	case data == "support_ticket":
		b.sendSupportCategoryMenu(chatID)
	case strings.HasPrefix(data, "support_cat:"):
		b.startSupportConversation(chatID, user.ID, strings.TrimPrefix(data, "support_cat:"))
	case data == "faq":
		b.sendFAQMenu(ctx, chatID)
	case strings.HasPrefix(data, "faq:"):
		b.sendFAQEntry(ctx, chatID, strings.TrimPrefix(data, "faq:"))
	case data == "start_command_reset":
		b.engine.Cancel(user.ID)
		b.clearSupportState(user.ID)
		msg := tgbotapi.NewMessage(chatID, "Welcome! Choose an option below:")
		msg.ReplyMarkup = b.startMenu()
		b.sendMessage(msg)
	}
}

// startFlow opens a verification flow and sends its entry prompt
func (b *Bot) startFlow(chatID int64, user verify.User, flow verify.Flow) {
	b.clearSupportState(user.ID)
	reply := b.engine.StartFlow(user, flow)
	b.reply(chatID, reply.Text)
}

func (b *Bot) sendVIPTypeMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Which VIP channel would you like to join?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Deriv VIP (Synthetic)", "vip_deriv_start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Currencies VIP", "vip_currencies_start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "start_command_reset"),
		),
	)
	b.sendMessage(msg)
}

func (b *Bot) sendCurrenciesMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Select your broker:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚀 OctaFX", "currencies_octa_start"),
			tgbotapi.NewInlineKeyboardButtonData("💠 Vantage", "currencies_vantage_start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "select_vip_type"),
		),
	)
	b.sendMessage(msg)
}

// sendMyTickets shows the user's last 10 tickets
func (b *Bot) sendMyTickets(ctx context.Context, chatID, userID int64) {
	tickets, err := b.db.ListUserTickets(ctx, userID, 10)
	if err != nil {
		b.logger.Error("Failed to list user tickets",
			zap.Int64("user_id", userID), zap.Error(err))
		b.reply(chatID, "Error fetching your tickets. Please try again.")
		return
	}
	if len(tickets) == 0 {
		b.reply(chatID, "You have no tickets yet. Use /start to open one.")
		return
	}

	var text strings.Builder
	text.WriteString("📊 Your tickets:\n\n")
	for _, t := range tickets {
		fmt.Fprintf(&text, "%s %s | %s | %s\n",
			statusEmoji(t.Status), t.TicketID, t.Category,
			t.CreatedAt.Format("2006-01-02"))
	}
	b.reply(chatID, text.String())
}

func statusEmoji(status models.TicketStatus) string {
	switch status {
	case models.StatusOpen:
		return "🟡"
	case models.StatusAssigned:
		return "🔵"
	case models.StatusClosed:
		return "✅"
	}
	return "⚪"
}

func (b *Bot) sendSupportCategoryMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🎫 What is your issue about?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Payments", "support_cat:Payments"),
			tgbotapi.NewInlineKeyboardButtonData("🔧 Technical", "support_cat:Technical"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 General", "support_cat:General"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "start_command_reset"),
		),
	)
	b.sendMessage(msg)
}

func (b *Bot) startSupportConversation(chatID, userID int64, category string) {
	b.engine.Cancel(userID)
	b.setSupportState(userID, &supportState{Category: category})
	b.reply(chatID, fmt.Sprintf(
		"Describe your %s issue in one message and I'll open a ticket for you.",
		strings.ToLower(category)))
}

// sendFAQMenu shows the knowledge base index
func (b *Bot) sendFAQMenu(ctx context.Context, chatID int64) {
	entries, err := b.db.ListFAQ(ctx)
	if err != nil {
		b.logger.Error("Failed to list FAQ entries", zap.Error(err))
		b.reply(chatID, "Error fetching the FAQ. Please try again.")
		return
	}
	if len(entries) == 0 {
		b.reply(chatID, "The FAQ is empty right now.")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(e.Question, "faq:"+e.Slug),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", "start_command_reset"),
	))

	msg := tgbotapi.NewMessage(chatID, "❓ Frequently asked questions:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.sendMessage(msg)
}

func (b *Bot) sendFAQEntry(ctx context.Context, chatID int64, slug string) {
	entry, err := b.db.FindFAQ(ctx, slug)
	if errors.Is(err, storage.ErrNotFound) {
		b.reply(chatID, "That FAQ entry no longer exists.")
		return
	}
	if err != nil {
		b.logger.Error("Failed to fetch FAQ entry",
			zap.String("slug", slug), zap.Error(err))
		b.reply(chatID, "Error fetching the FAQ entry. Please try again.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("❓ %s\n\n%s", entry.Question, entry.Answer))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to FAQ", "faq"),
		),
	)
	b.sendMessage(msg)
}
