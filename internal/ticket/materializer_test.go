package ticket

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supportbot/internal/models"
	"supportbot/internal/storage/stubs"
)

type recordingNotifier struct {
	delivered []Notification
	failFor   map[int64]error
}

func (n *recordingNotifier) Notify(ctx context.Context, group models.Group, notif Notification) error {
	if err := n.failFor[group.GroupID]; err != nil {
		return err
	}
	n.delivered = append(n.delivered, notif)
	return nil
}

func TestCreatePersistsOpenTicket(t *testing.T) {
	ctx := context.Background()
	db := stubs.NewMockDB()
	require.NoError(t, db.Initialize(ctx))

	m := NewMaterializer(db, &recordingNotifier{}, zap.NewNop())

	id, err := m.Create(ctx, 42, "@alice", "Deriv VIP", "CR number: CR5499637")
	require.NoError(t, err)

	ticket, err := db.FindTicketByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ticket.UserID)
	assert.Equal(t, "Deriv VIP", ticket.Category)
	assert.Equal(t, models.StatusOpen, ticket.Status)
	assert.WithinDuration(t, time.Now().UTC(), ticket.CreatedAt, 5*time.Second)
}

func TestTicketIDFormat(t *testing.T) {
	ctx := context.Background()
	db := stubs.NewMockDB()
	require.NoError(t, db.Initialize(ctx))
	m := NewMaterializer(db, &recordingNotifier{}, zap.NewNop())

	testCases := []struct {
		category string
		prefix   string
	}{
		{"Deriv VIP", "DVIP"},
		{"Currencies VIP", "CVIP"},
		{"Free Mentorship", "MENT"},
		{"Support / General", "SUP"},
	}
	today := time.Now().UTC().Format("20060102")
	for _, tc := range testCases {
		id, err := m.Create(ctx, 1, "@u", tc.category, "body")
		require.NoError(t, err)
		pattern := fmt.Sprintf(`^%s-%s-\d+$`, tc.prefix, today)
		assert.Regexp(t, regexp.MustCompile(pattern), id)
	}
}

func TestTicketIDsAreDistinct(t *testing.T) {
	ctx := context.Background()
	db := stubs.NewMockDB()
	require.NoError(t, db.Initialize(ctx))
	m := NewMaterializer(db, &recordingNotifier{}, zap.NewNop())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := m.Create(ctx, int64(i), "@u", "Deriv VIP", "body")
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestDuplicateInsertReturnsPersistenceError(t *testing.T) {
	ctx := context.Background()
	db := stubs.NewMockDB()
	require.NoError(t, db.Initialize(ctx))

	m := NewMaterializer(db, &recordingNotifier{}, zap.NewNop())
	// Force the next generated suffix to collide with an existing ticket.
	id, err := m.Create(ctx, 1, "@u", "Deriv VIP", "body")
	require.NoError(t, err)

	m2 := NewMaterializer(db, &recordingNotifier{}, zap.NewNop())
	m2.seq.Store(m.seq.Load() - 1)
	id2, err := m2.Create(ctx, 2, "@v", "Deriv VIP", "body")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersistence))
	assert.Empty(t, id2)

	// The original ticket is untouched.
	_, err = db.FindTicketByID(ctx, id)
	assert.NoError(t, err)
}

func TestNotificationFanOut(t *testing.T) {
	ctx := context.Background()
	db := stubs.NewMockDB()
	require.NoError(t, db.Initialize(ctx))

	for _, groupID := range []int64{-100, -200, -300} {
		require.NoError(t, db.UpsertGroup(ctx, models.Group{GroupID: groupID, Active: true}))
	}
	// Inactive groups are skipped.
	require.NoError(t, db.UpsertGroup(ctx, models.Group{GroupID: -400, Active: false}))

	notifier := &recordingNotifier{failFor: map[int64]error{-200: errors.New("blocked")}}
	m := NewMaterializer(db, notifier, zap.NewNop())

	id, err := m.Create(ctx, 5, "@carol", "Free Mentorship", "Deposit: 80.00 USD")
	require.NoError(t, err, "one failed delivery must not fail the operation")

	assert.Len(t, notifier.delivered, 2)
	for _, n := range notifier.delivered {
		assert.Equal(t, id, n.TicketID)
		assert.Equal(t, "Free Mentorship", n.Category)
		assert.Equal(t, "@carol", n.DisplayName)
	}
}
