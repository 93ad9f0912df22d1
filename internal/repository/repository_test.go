package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
	"github.com/samandr77/crm/pkg/postgres"
)

func TestRepository_CreateAndGetClient(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	want := testClient()

	err := repo.CreateClient(ctx, want)
	require.NoError(t, err)

	got, err := repo.ClientByID(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRepository_ClientByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	_, err := repo.ClientByID(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_Clients_Order(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	older := testClient()
	older.CreatedAt = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	newer := testClient()
	newer.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateClient(ctx, older))
	require.NoError(t, repo.CreateClient(ctx, newer))

	clients, err := repo.Clients(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(clients), 2)

	for i := 1; i < len(clients); i++ {
		require.False(t, clients[i].CreatedAt.After(clients[i-1].CreatedAt),
			"clients must be ordered by created_at descending")
	}
}

func TestRepository_UpdateClient(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	client := testClient()
	require.NoError(t, repo.CreateClient(ctx, client))

	client.FullName = "Jane Smith"
	client.Email = "jane@example.com"
	client.Description = "updated"

	require.NoError(t, repo.UpdateClient(ctx, client))

	got, err := repo.ClientByID(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, client, got)

	// A second identical update changes nothing.
	require.NoError(t, repo.UpdateClient(ctx, client))

	again, err := repo.ClientByID(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestRepository_DeleteClient_CascadesRequests(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	client := testClient()
	require.NoError(t, repo.CreateClient(ctx, client))

	request := entity.Request{
		ID:        uuid.Must(uuid.NewV4()),
		FullName:  client.FullName,
		Title:     "title",
		Status:    entity.RequestStatusNew,
		ClientID:  uuid.NullUUID{UUID: client.ID, Valid: true},
		Comment:   "comment",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.CreateRequest(ctx, request))

	requests, err := repo.RequestsByClientID(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, []entity.Request{request}, requests)

	require.NoError(t, repo.DeleteClient(ctx, client.ID))

	_, err = repo.ClientByID(ctx, client.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	requests, err = repo.RequestsByClientID(ctx, client.ID)
	require.NoError(t, err)
	require.Empty(t, requests)
}

func TestRepository_RequestsByClientID_Order(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	client := testClient()
	require.NoError(t, repo.CreateClient(ctx, client))

	older := entity.Request{
		ID:        uuid.Must(uuid.NewV4()),
		FullName:  client.FullName,
		Title:     "older",
		Status:    entity.RequestStatusNew,
		ClientID:  uuid.NullUUID{UUID: client.ID, Valid: true},
		CreatedAt: time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	newer := older
	newer.ID = uuid.Must(uuid.NewV4())
	newer.Title = "newer"
	newer.Status = entity.RequestStatusDone
	newer.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateRequest(ctx, older))
	require.NoError(t, repo.CreateRequest(ctx, newer))

	requests, err := repo.RequestsByClientID(ctx, client.ID)
	require.NoError(t, err)
	require.Equal(t, []entity.Request{newer, older}, requests)
}

func testClient() entity.Client {
	return entity.Client{
		ID:          uuid.Must(uuid.NewV4()),
		FullName:    "John Doe",
		Email:       "john@example.com",
		Description: uuid.Must(uuid.NewV4()).String(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	err = postgres.UpMigrations(dsn)
	require.NoError(t, err)

	return pool
}
