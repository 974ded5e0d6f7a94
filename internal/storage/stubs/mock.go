package stubs

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"supportbot/internal/models"
	"supportbot/internal/storage"
)

// MockDB is an in-memory implementation of the Storage interface for testing
// and for running the bot without a MongoDB instance (USE_MOCK_DB=true).
type MockDB struct {
	mu      sync.RWMutex
	tickets map[string]models.Ticket
	groups  map[int64]models.Group
	faq     map[string]models.FAQEntry
}

// NewMockDB creates a new mock database
func NewMockDB() *MockDB {
	return &MockDB{
		tickets: make(map[string]models.Ticket),
		groups:  make(map[int64]models.Group),
		faq:     make(map[string]models.FAQEntry),
	}
}

// Initialize seeds the default FAQ entries
func (m *MockDB) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range models.DefaultFAQ {
		m.faq[e.Slug] = e
	}
	return nil
}

// InsertTicket stores a ticket, enforcing ticket_id uniqueness like the
// unique index in the real store.
func (m *MockDB) InsertTicket(ctx context.Context, t models.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tickets[t.TicketID]; exists {
		return fmt.Errorf("ticket %s: %w", t.TicketID, storage.ErrDuplicateTicket)
	}
	m.tickets[t.TicketID] = t
	return nil
}

func (m *MockDB) FindTicketByID(ctx context.Context, ticketID string) (models.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tickets[ticketID]
	if !ok {
		return models.Ticket{}, fmt.Errorf("ticket %s: %w", ticketID, storage.ErrNotFound)
	}
	return t, nil
}

// ListUserTickets returns the user's tickets, newest first
func (m *MockDB) ListUserTickets(ctx context.Context, userID int64, limit int) ([]models.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tickets []models.Ticket
	for _, t := range m.tickets {
		if t.UserID == userID {
			tickets = append(tickets, t)
		}
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})

	if limit > 0 && limit < len(tickets) {
		tickets = tickets[:limit]
	}
	return tickets, nil
}

func (m *MockDB) ListOpenTickets(ctx context.Context, limit int) ([]models.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tickets []models.Ticket
	for _, t := range m.tickets {
		if t.Status == models.StatusOpen {
			tickets = append(tickets, t)
		}
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})

	if limit > 0 && limit < len(tickets) {
		tickets = tickets[:limit]
	}
	return tickets, nil
}

func (m *MockDB) UpdateTicketStatus(ctx context.Context, ticketID string, status models.TicketStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tickets[ticketID]
	if !ok {
		return fmt.Errorf("ticket %s: %w", ticketID, storage.ErrNotFound)
	}
	t.Status = status
	m.tickets[ticketID] = t
	return nil
}

func (m *MockDB) UpsertGroup(ctx context.Context, g models.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.groups[g.GroupID] = g
	return nil
}

func (m *MockDB) SetGroupActive(ctx context.Context, groupID int64, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[groupID]
	if !ok {
		return fmt.Errorf("group %d: %w", groupID, storage.ErrNotFound)
	}
	g.Active = active
	m.groups[groupID] = g
	return nil
}

func (m *MockDB) ListActiveGroups(ctx context.Context) ([]models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var groups []models.Group
	for _, g := range m.groups {
		if g.Active {
			groups = append(groups, g)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].GroupID < groups[j].GroupID
	})
	return groups, nil
}

func (m *MockDB) ListFAQ(ctx context.Context) ([]models.FAQEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []models.FAQEntry
	for _, e := range m.faq {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Slug < entries[j].Slug
	})
	return entries, nil
}

func (m *MockDB) FindFAQ(ctx context.Context, slug string) (models.FAQEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.faq[slug]
	if !ok {
		return models.FAQEntry{}, fmt.Errorf("faq %s: %w", slug, storage.ErrNotFound)
	}
	return e, nil
}

// Ping does nothing for mock DB
func (m *MockDB) Ping(ctx context.Context) error {
	return nil
}

// Close does nothing for mock DB
func (m *MockDB) Close() error {
	return nil
}
