package storage

import (
	"context"
	"errors"

	"supportbot/internal/models"
)

// Sentinel errors returned by Storage implementations so callers can
// discriminate failures without depending on driver error types.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateTicket = errors.New("duplicate ticket id")
)

// Storage defines the interface for data storage operations
type Storage interface {
	// Ticket operations
	InsertTicket(ctx context.Context, t models.Ticket) error
	FindTicketByID(ctx context.Context, ticketID string) (models.Ticket, error)
	ListUserTickets(ctx context.Context, userID int64, limit int) ([]models.Ticket, error)
	ListOpenTickets(ctx context.Context, limit int) ([]models.Ticket, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, status models.TicketStatus) error

	// Group operations
	UpsertGroup(ctx context.Context, g models.Group) error
	SetGroupActive(ctx context.Context, groupID int64, active bool) error
	ListActiveGroups(ctx context.Context) ([]models.Group, error)

	// Knowledge base
	ListFAQ(ctx context.Context) ([]models.FAQEntry, error)
	FindFAQ(ctx context.Context, slug string) (models.FAQEntry, error)

	// Lifecycle
	Initialize(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
