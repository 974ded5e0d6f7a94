package ticket

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"supportbot/internal/models"
	"supportbot/internal/storage"
)

// ErrPersistence wraps any storage failure during materialization. Callers
// treat it as retryable.
var ErrPersistence = errors.New("ticket persistence failed")

// Notification is the payload fanned out to connected groups after a
// ticket is persisted.
type Notification struct {
	TicketID    string
	Category    string
	Description string
	DisplayName string
}

// Notifier delivers a ticket notification to one group. Delivery failures
// are the notifier's to report and the materializer's to tolerate.
type Notifier interface {
	Notify(ctx context.Context, group models.Group, n Notification) error
}

// Materializer turns completed verifications and support requests into
// persisted tickets and announces them to connected groups.
type Materializer struct {
	store    storage.Storage
	notifier Notifier
	logger   *zap.Logger
	seq      atomic.Int64
}

func NewMaterializer(store storage.Storage, notifier Notifier, logger *zap.Logger) *Materializer {
	m := &Materializer{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
	// Seed from the clock so restarts don't replay suffixes within a day.
	m.seq.Store(time.Now().UnixNano() % 1_000_000)
	return m
}

// Create persists a new open ticket and notifies every active group. The
// ticket is the source of truth: persistence failures return ErrPersistence,
// while notification failures are logged and never surface to the caller.
func (m *Materializer) Create(ctx context.Context, userID int64, displayName, category, description string) (string, error) {
	now := time.Now().UTC()
	id := fmt.Sprintf("%s-%s-%d", prefixFor(category), now.Format("20060102"), m.seq.Add(1))

	t := models.Ticket{
		TicketID:        id,
		UserID:          userID,
		UserDisplayName: displayName,
		Category:        category,
		Description:     description,
		Status:          models.StatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := m.store.InsertTicket(ctx, t); err != nil {
		return "", fmt.Errorf("%w: insert %s: %v", ErrPersistence, id, err)
	}
	m.logger.Info("ticket created",
		zap.String("ticket_id", id),
		zap.Int64("user_id", userID),
		zap.String("category", category),
	)

	m.fanOut(ctx, Notification{
		TicketID:    id,
		Category:    category,
		Description: description,
		DisplayName: displayName,
	})
	return id, nil
}

// fanOut announces the ticket to all active groups. A failed lookup or a
// failed delivery to one group never affects the others or the result.
func (m *Materializer) fanOut(ctx context.Context, n Notification) {
	groups, err := m.store.ListActiveGroups(ctx)
	if err != nil {
		m.logger.Error("listing notification groups failed",
			zap.String("ticket_id", n.TicketID), zap.Error(err))
		return
	}
	for _, g := range groups {
		if err := m.notifier.Notify(ctx, g, n); err != nil {
			m.logger.Error("group notification failed",
				zap.String("ticket_id", n.TicketID),
				zap.Int64("group_id", g.GroupID),
				zap.Error(err),
			)
		}
	}
}

func prefixFor(category string) string {
	switch category {
	case "Deriv VIP":
		return "DVIP"
	case "Currencies VIP":
		return "CVIP"
	case "Free Mentorship":
		return "MENT"
	}
	return "SUP"
}
