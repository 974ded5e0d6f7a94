package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"supportbot/internal/models"
	"supportbot/internal/storage"
)

// handleCommand dispatches private chat commands
func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "faq":
		b.sendFAQMenu(ctx, message.Chat.ID)
	case "tickets":
		b.handleOpenTickets(ctx, message)
	case "assign":
		b.handleTicketStatus(ctx, message, models.StatusAssigned)
	case "close":
		b.handleTicketStatus(ctx, message, models.StatusClosed)
	default:
		b.reply(message.Chat.ID, "Unknown command. Use /start to see available options.")
	}
}

// handleStart shows the main menu
func (b *Bot) handleStart(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "Welcome! Choose an option below:")
	msg.ReplyMarkup = b.startMenu()
	b.sendMessage(msg)
}

func (b *Bot) startMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 VIP Registration", "select_vip_type"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎓 Free Mentorship", "free_mentorship_start"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎫 Support Ticket", "support_ticket"),
			tgbotapi.NewInlineKeyboardButtonData("❓ FAQ", "faq"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My Tickets", "my_tickets"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📘 Tagging Guide", b.cfg.TaggingGuideURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("👤 Contact Admin", b.cfg.AdminContactURL),
		),
	)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	text := `Available commands:
/start - Show the main menu
/faq - Browse frequently asked questions
/help - Show this message

Use the menu buttons to register for VIP channels, apply for mentorship, or open a support ticket.`
	b.reply(message.Chat.ID, text)
}

// handleOpenTickets lists open tickets for staff
func (b *Bot) handleOpenTickets(ctx context.Context, message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.reply(message.Chat.ID, "This command is available to staff only.")
		return
	}

	tickets, err := b.db.ListOpenTickets(ctx, 20)
	if err != nil {
		b.logger.Error("Failed to list open tickets", zap.Error(err))
		b.reply(message.Chat.ID, "Error fetching tickets. Please try again.")
		return
	}
	if len(tickets) == 0 {
		b.reply(message.Chat.ID, "No open tickets. 🎉")
		return
	}

	var text strings.Builder
	text.WriteString("Open tickets:\n\n")
	for _, t := range tickets {
		fmt.Fprintf(&text, "🎫 %s | %s | %s | %s\n",
			t.TicketID, t.Category, t.UserDisplayName,
			t.CreatedAt.Format("2006-01-02 15:04"))
	}
	text.WriteString("\nUse /assign <ticket_id> or /close <ticket_id>.")
	b.reply(message.Chat.ID, text.String())
}

// handleTicketStatus moves a ticket to the given status
func (b *Bot) handleTicketStatus(ctx context.Context, message *tgbotapi.Message, status models.TicketStatus) {
	if !b.isAdmin(message.From.ID) {
		b.reply(message.Chat.ID, "This command is available to staff only.")
		return
	}

	ticketID := strings.TrimSpace(message.CommandArguments())
	if ticketID == "" {
		b.reply(message.Chat.ID, fmt.Sprintf("Usage: /%s <ticket_id>", message.Command()))
		return
	}

	err := b.db.UpdateTicketStatus(ctx, ticketID, status)
	if errors.Is(err, storage.ErrNotFound) {
		b.reply(message.Chat.ID, fmt.Sprintf("Ticket %s not found.", ticketID))
		return
	}
	if err != nil {
		b.logger.Error("Failed to update ticket status",
			zap.String("ticket_id", ticketID), zap.Error(err))
		b.reply(message.Chat.ID, "Error updating the ticket. Please try again.")
		return
	}
	b.reply(message.Chat.ID, fmt.Sprintf("Ticket %s is now %s.", ticketID, status))
}

// handleGroupMessage processes group chat commands. The bot stays silent
// in groups except for its own commands.
func (b *Bot) handleGroupMessage(ctx context.Context, message *tgbotapi.Message) {
	if !message.IsCommand() {
		return
	}

	switch message.Command() {
	case "start":
		b.handleGroupStart(ctx, message)
	case "connect":
		b.handleGroupActive(ctx, message, true)
	case "disconnect":
		b.handleGroupActive(ctx, message, false)
	}
}

// handleGroupStart registers the group so staff can later connect it to
// the ticket notification fan-out.
func (b *Bot) handleGroupStart(ctx context.Context, message *tgbotapi.Message) {
	g := models.Group{
		GroupID:     message.Chat.ID,
		Title:       message.Chat.Title,
		Active:      false,
		RequestedAt: time.Now().UTC(),
	}
	if err := b.db.UpsertGroup(ctx, g); err != nil {
		b.logger.Error("Failed to register group",
			zap.Int64("group_id", message.Chat.ID), zap.Error(err))
		b.reply(message.Chat.ID, "Error registering this group. Please try again.")
		return
	}
	b.logger.Info("Group registered",
		zap.Int64("group_id", message.Chat.ID),
		zap.String("title", message.Chat.Title),
	)
	b.reply(message.Chat.ID,
		"👋 This group is registered. A staff member can enable ticket notifications with /connect.")
}

func (b *Bot) handleGroupActive(ctx context.Context, message *tgbotapi.Message, active bool) {
	if !b.isAdmin(message.From.ID) {
		b.reply(message.Chat.ID, "Only staff can change notification settings.")
		return
	}

	err := b.db.SetGroupActive(ctx, message.Chat.ID, active)
	if errors.Is(err, storage.ErrNotFound) {
		b.reply(message.Chat.ID, "This group is not registered yet. Send /start first.")
		return
	}
	if err != nil {
		b.logger.Error("Failed to update group",
			zap.Int64("group_id", message.Chat.ID), zap.Error(err))
		b.reply(message.Chat.ID, "Error updating notification settings. Please try again.")
		return
	}

	if active {
		b.reply(message.Chat.ID, "🔔 Ticket notifications enabled for this group.")
	} else {
		b.reply(message.Chat.ID, "🔕 Ticket notifications disabled for this group.")
	}
}
