package testdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/database"
)

// TestDB wraps a disposable MongoDB instance for integration tests
type TestDB struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Container testcontainers.Container
}

// Close cleans up the test database
func (td *TestDB) Close() error {
	ctx := context.Background()
	if td.Client != nil {
		_ = td.Client.Disconnect(ctx)
	}
	if td.Container != nil {
		return td.Container.Terminate(ctx)
	}
	return nil
}

// SetupTestDB starts a MongoDB container and returns a connected database.
// Callers that cannot reach a Docker daemon should run with -short.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	cfg := &config.Config{
		MongoURI:         fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		MongoDatabase:    "tastebase_test",
		MongoMaxPoolSize: 10,
	}

	client, err := database.New(ctx, cfg)
	require.NoError(t, err)

	db := client.Database(cfg.MongoDatabase)
	require.NoError(t, database.EnsureIndexes(ctx, db))

	testDB := &TestDB{
		Client:    client,
		DB:        db,
		Container: container,
	}

	t.Cleanup(func() {
		if err := testDB.Close(); err != nil {
			t.Logf("Error cleaning up test database: %v", err)
		}
	})

	return testDB
}
