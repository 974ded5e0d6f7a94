package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"supportbot/internal/models"
	"supportbot/internal/storage"
)

const connectTimeout = 10 * time.Second

// MongoDB is the document-store backed implementation of storage.Storage.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, database string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoDB{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (m *MongoDB) tickets() *mongo.Collection { return m.db.Collection("tickets") }
func (m *MongoDB) groups() *mongo.Collection  { return m.db.Collection("groups") }
func (m *MongoDB) faq() *mongo.Collection     { return m.db.Collection("faq") }

// Initialize ensures the indexes the bot relies on and seeds the FAQ
// collection with the default articles when it is empty.
func (m *MongoDB) Initialize(ctx context.Context) error {
	_, err := m.tickets().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ticket_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create ticket indexes: %w", err)
	}

	_, err = m.groups().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "group_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create group index: %w", err)
	}

	count, err := m.faq().CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to count FAQ entries: %w", err)
	}
	if count == 0 {
		entries := make([]interface{}, 0, len(models.DefaultFAQ))
		for _, e := range models.DefaultFAQ {
			entries = append(entries, e)
		}
		if _, err := m.faq().InsertMany(ctx, entries); err != nil {
			return fmt.Errorf("failed to seed FAQ entries: %w", err)
		}
	}

	return nil
}

// InsertTicket persists a ticket. A unique-index violation on ticket_id is
// reported as storage.ErrDuplicateTicket.
func (m *MongoDB) InsertTicket(ctx context.Context, t models.Ticket) error {
	_, err := m.tickets().InsertOne(ctx, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("ticket %s: %w", t.TicketID, storage.ErrDuplicateTicket)
		}
		return fmt.Errorf("failed to insert ticket %s: %w", t.TicketID, err)
	}
	return nil
}

func (m *MongoDB) FindTicketByID(ctx context.Context, ticketID string) (models.Ticket, error) {
	var t models.Ticket
	err := m.tickets().FindOne(ctx, bson.D{{Key: "ticket_id", Value: ticketID}}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Ticket{}, fmt.Errorf("ticket %s: %w", ticketID, storage.ErrNotFound)
		}
		return models.Ticket{}, fmt.Errorf("failed to find ticket %s: %w", ticketID, err)
	}
	return t, nil
}

func (m *MongoDB) ListUserTickets(ctx context.Context, userID int64, limit int) ([]models.Ticket, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := m.tickets().Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets for user %d: %w", userID, err)
	}
	var tickets []models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets for user %d: %w", userID, err)
	}
	return tickets, nil
}

func (m *MongoDB) ListOpenTickets(ctx context.Context, limit int) ([]models.Ticket, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := m.tickets().Find(ctx, bson.D{{Key: "status", Value: models.StatusOpen}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tickets: %w", err)
	}
	var tickets []models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode open tickets: %w", err)
	}
	return tickets, nil
}

func (m *MongoDB) UpdateTicketStatus(ctx context.Context, ticketID string, status models.TicketStatus) error {
	res, err := m.tickets().UpdateOne(ctx,
		bson.D{{Key: "ticket_id", Value: ticketID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", ticketID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("ticket %s: %w", ticketID, storage.ErrNotFound)
	}
	return nil
}

func (m *MongoDB) UpsertGroup(ctx context.Context, g models.Group) error {
	_, err := m.groups().UpdateOne(ctx,
		bson.D{{Key: "group_id", Value: g.GroupID}},
		bson.D{{Key: "$set", Value: g}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert group %d: %w", g.GroupID, err)
	}
	return nil
}

func (m *MongoDB) SetGroupActive(ctx context.Context, groupID int64, active bool) error {
	res, err := m.groups().UpdateOne(ctx,
		bson.D{{Key: "group_id", Value: groupID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "active", Value: active}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update group %d: %w", groupID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group %d: %w", groupID, storage.ErrNotFound)
	}
	return nil
}

func (m *MongoDB) ListActiveGroups(ctx context.Context) ([]models.Group, error) {
	cursor, err := m.groups().Find(ctx, bson.D{{Key: "active", Value: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to list active groups: %w", err)
	}
	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode active groups: %w", err)
	}
	return groups, nil
}

func (m *MongoDB) ListFAQ(ctx context.Context) ([]models.FAQEntry, error) {
	cursor, err := m.faq().Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "slug", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQ entries: %w", err)
	}
	var entries []models.FAQEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode FAQ entries: %w", err)
	}
	return entries, nil
}

func (m *MongoDB) FindFAQ(ctx context.Context, slug string) (models.FAQEntry, error) {
	var e models.FAQEntry
	err := m.faq().FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.FAQEntry{}, fmt.Errorf("faq %s: %w", slug, storage.ErrNotFound)
		}
		return models.FAQEntry{}, fmt.Errorf("failed to find FAQ %s: %w", slug, err)
	}
	return e, nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
