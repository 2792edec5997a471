package pg

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uraita-dev/uraita/shared/config"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "uraita"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("migrations", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// The container restarts itself after first startup, so wait for
			// the readiness log twice.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(&config.Config{
		Public: config.Public{ThreadTTLHours: 12},
		Private: config.Private{
			Pg: config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName},
		},
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// resetTables wipes all board data between tests.
func resetTables(t *testing.T) {
	t.Helper()
	if _, err := storage.db.Exec("TRUNCATE threads CASCADE"); err != nil {
		t.Fatalf("failed to reset tables: %s", err)
	}
}

// backdateThread moves a thread's created_at into the past.
func backdateThread(t *testing.T, id int64, age time.Duration) {
	t.Helper()
	_, err := storage.db.Exec(
		"UPDATE threads SET created_at = now() - $1::bigint * interval '1 second' WHERE id = $2",
		int64(age.Seconds()), id,
	)
	if err != nil {
		t.Fatalf("failed to backdate thread: %s", err)
	}
}

// backdatePost moves a post's created_at into the past.
func backdatePost(t *testing.T, id int64, age time.Duration) {
	t.Helper()
	_, err := storage.db.Exec(
		"UPDATE posts SET created_at = now() - $1::bigint * interval '1 second' WHERE id = $2",
		int64(age.Seconds()), id,
	)
	if err != nil {
		t.Fatalf("failed to backdate post: %s", err)
	}
}
