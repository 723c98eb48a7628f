package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/GreenD94/ladingburger-sub002/internal/registry"
	"github.com/GreenD94/ladingburger-sub002/internal/utility"
)

// Store wraps the MongoDB client and database for one deployment. It is
// constructed once in cmd/server and injected into every service, replacing
// any module-level connection singleton. Collection handles are cached in a
// thread-safe registry.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	cols   *registry.Registry[*mongo.Collection]
}

// NewStore creates a Store over the given client and database name.
func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{
		client: client,
		db:     client.Database(dbName),
		cols:   registry.NewRegistry[*mongo.Collection](),
	}
}

// Collection returns the cached handle for a collection, creating it on
// first use.
func (s *Store) Collection(name string) *mongo.Collection {
	col, _ := s.cols.GetOrCreate(name, func() (*mongo.Collection, error) {
		return s.db.Collection(name), nil
	})
	return col
}

// Database exposes the underlying database for aggregation helpers.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// EnsureCollections explicitly creates any collection that does not exist
// yet, so index creation and first reads never race against implicit
// creation.
func (s *Store) EnsureCollections(ctx context.Context, names []string) error {
	existing, err := s.db.ListCollectionNames(ctx, map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, name := range names {
		if utility.Contains(existing, name) {
			continue
		}
		if err := s.db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	return Close(s.client)
}
