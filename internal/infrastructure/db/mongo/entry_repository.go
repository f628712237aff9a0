package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/timekeep/attendance-system/internal/core/domain"
)

const entriesCollection = "entries"

// EntryRepository implements ports.EntryRepository on MongoDB.
type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID      string             `bson:"owner_id"`
	Kind         string             `bson:"kind"`
	Time         time.Time          `bson:"time"`
	Latitude     float64            `bson:"latitude"`
	Longitude    float64            `bson:"longitude"`
	LocationCode string             `bson:"location_code"`
}

func (r *EntryRepository) Insert(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEntry{
		OwnerID:      entry.OwnerID,
		Kind:         string(entry.Kind),
		Time:         entry.Time.UTC(),
		Latitude:     entry.Latitude,
		Longitude:    entry.Longitude,
		LocationCode: entry.LocationCode,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	stored := *entry
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored.ID = oid.Hex()
	}
	return &stored, nil
}

// ListByOwner returns all entries for an owner, newest first.
func (r *EntryRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	filter := bson.M{"owner_id": ownerID}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: -1}})
	return r.find(ctx, filter, opts)
}

// ListByOwnerSince returns entries at or after the cutoff, oldest first.
func (r *EntryRepository) ListByOwnerSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Entry, error) {
	filter := bson.M{
		"owner_id": ownerID,
		"time":     bson.M{"$gte": since.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *EntryRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	var docs []mongoEntry
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	entries := make([]domain.Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, domain.Entry{
			ID:           d.ID.Hex(),
			OwnerID:      d.OwnerID,
			Kind:         domain.EntryKind(d.Kind),
			Time:         d.Time,
			Latitude:     d.Latitude,
			Longitude:    d.Longitude,
			LocationCode: d.LocationCode,
		})
	}
	return entries, nil
}

// EnsureIndexes creates the owner_id+time index used by both list queries.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "time", Value: 1}},
	})
	return err
}
