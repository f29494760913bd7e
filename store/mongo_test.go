package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getMongoStore(t *testing.T) *MongoStore {
	uri := os.Getenv("MONGO_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := OpenMongo(ctx, uri, "horion_test")
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := s.client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	t.Cleanup(func() {
		_ = s.db.Drop(context.Background())
		_ = s.Close(context.Background())
	})
	return s
}

func TestMongoStore_InsertFindUpdate(t *testing.T) {
	s := getMongoStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, "order", testDoc{Name: "ugu", Total: 25, Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, id, 24)

	var got testDoc
	require.NoError(t, s.FindOne(ctx, "order", id, &got))
	assert.Equal(t, "ugu", got.Name)

	require.NoError(t, s.UpdateFields(ctx, "order", id, map[string]any{"status": "fulfilled"}))
	require.NoError(t, s.FindOne(ctx, "order", id, &got))
	assert.Equal(t, "fulfilled", got.Status)

	names, err := s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "order")
}

func TestMongoStore_MalformedIDIsNotFound(t *testing.T) {
	s := getMongoStore(t)
	ctx := context.Background()

	var got testDoc
	assert.ErrorIs(t, s.FindOne(ctx, "order", "nope", &got), ErrNotFound)
	assert.ErrorIs(t, s.FindOne(ctx, "order", "507f1f77bcf86cd799439011", &got), ErrNotFound)
	assert.ErrorIs(t, s.UpdateFields(ctx, "order", "nope", map[string]any{"a": 1}), ErrNotFound)
}

func TestOpen_RejectsUnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "postgres://localhost/db", "x")
	assert.Error(t, err)
}
