package models

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusAssigned TicketStatus = "assigned"
	StatusClosed   TicketStatus = "closed"
)

// Ticket represents a completed verification or generic support request.
// TicketID is unique across the store; uniqueness is enforced by the storage layer.
type Ticket struct {
	TicketID        string       `bson:"ticket_id"`
	UserID          int64        `bson:"user_id"`
	UserDisplayName string       `bson:"user_display_name"`
	Category        string       `bson:"category"`
	Description     string       `bson:"description"`
	Status          TicketStatus `bson:"status"`
	CreatedAt       time.Time    `bson:"created_at"`
	UpdatedAt       time.Time    `bson:"updated_at"`
}

// Group represents a Telegram group connected to the bot.
// Active groups receive ticket notifications.
type Group struct {
	GroupID     int64     `bson:"group_id"`
	Title       string    `bson:"title"`
	Active      bool      `bson:"active"`
	RequestedAt time.Time `bson:"requested_at"`
}

// FAQEntry is a knowledge-base article shown in the FAQ menu.
type FAQEntry struct {
	Slug     string `bson:"slug"`
	Question string `bson:"question"`
	Answer   string `bson:"answer"`
}
