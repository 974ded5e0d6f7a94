package stubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"supportbot/internal/models"
	"supportbot/internal/storage"
)

func TestMockDBTicketLifecycle(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	if err := db.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	ticket := models.Ticket{
		TicketID:  "DVIP-20240610-1",
		UserID:    42,
		Category:  "Deriv VIP",
		Status:    models.StatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.InsertTicket(ctx, ticket); err != nil {
		t.Fatalf("InsertTicket failed: %v", err)
	}

	// Duplicate IDs are rejected.
	err := db.InsertTicket(ctx, ticket)
	if !errors.Is(err, storage.ErrDuplicateTicket) {
		t.Errorf("Expected ErrDuplicateTicket, got %v", err)
	}

	found, err := db.FindTicketByID(ctx, "DVIP-20240610-1")
	if err != nil {
		t.Fatalf("FindTicketByID failed: %v", err)
	}
	if found.UserID != 42 {
		t.Errorf("Expected user 42, got %d", found.UserID)
	}

	if err := db.UpdateTicketStatus(ctx, "DVIP-20240610-1", models.StatusClosed); err != nil {
		t.Fatalf("UpdateTicketStatus failed: %v", err)
	}
	found, _ = db.FindTicketByID(ctx, "DVIP-20240610-1")
	if found.Status != models.StatusClosed {
		t.Errorf("Expected status closed, got %s", found.Status)
	}

	err = db.UpdateTicketStatus(ctx, "missing", models.StatusClosed)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMockDBListUserTicketsNewestFirst(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		err := db.InsertTicket(ctx, models.Ticket{
			TicketID:  string(rune('A' + i)),
			UserID:    1,
			Status:    models.StatusOpen,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("InsertTicket failed: %v", err)
		}
	}
	// Other users are excluded.
	db.InsertTicket(ctx, models.Ticket{TicketID: "other", UserID: 2, CreatedAt: base})

	tickets, err := db.ListUserTickets(ctx, 1, 3)
	if err != nil {
		t.Fatalf("ListUserTickets failed: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("Expected 3 tickets, got %d", len(tickets))
	}
	for i := 1; i < len(tickets); i++ {
		if tickets[i].CreatedAt.After(tickets[i-1].CreatedAt) {
			t.Error("Expected tickets ordered newest first")
		}
	}
}

func TestMockDBGroups(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()

	if err := db.UpsertGroup(ctx, models.Group{GroupID: -100, Title: "Staff", Active: false}); err != nil {
		t.Fatalf("UpsertGroup failed: %v", err)
	}

	groups, _ := db.ListActiveGroups(ctx)
	if len(groups) != 0 {
		t.Errorf("Expected no active groups, got %d", len(groups))
	}

	if err := db.SetGroupActive(ctx, -100, true); err != nil {
		t.Fatalf("SetGroupActive failed: %v", err)
	}
	groups, _ = db.ListActiveGroups(ctx)
	if len(groups) != 1 || groups[0].GroupID != -100 {
		t.Errorf("Expected group -100 active, got %v", groups)
	}

	err := db.SetGroupActive(ctx, -999, true)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown group, got %v", err)
	}
}

func TestMockDBFAQSeeded(t *testing.T) {
	db := NewMockDB()
	ctx := context.Background()
	if err := db.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	entries, err := db.ListFAQ(ctx)
	if err != nil {
		t.Fatalf("ListFAQ failed: %v", err)
	}
	if len(entries) != len(models.DefaultFAQ) {
		t.Errorf("Expected %d FAQ entries, got %d", len(models.DefaultFAQ), len(entries))
	}

	entry, err := db.FindFAQ(ctx, models.DefaultFAQ[0].Slug)
	if err != nil {
		t.Fatalf("FindFAQ failed: %v", err)
	}
	if entry.Answer == "" {
		t.Error("Expected seeded FAQ entry to have an answer")
	}

	if _, err := db.FindFAQ(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
