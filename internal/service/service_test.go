package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/mocks"
	"github.com/samandr77/crm/internal/service"
)

func newTestService(t *testing.T) (*service.Service, *mocks.MockRepository, *mocks.MockProducer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	return service.New(repo, producer), repo, producer
}

func TestService_CreateClient(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, producer := newTestService(t)
	ctx := context.Background()

	input := entity.ClientInput{
		FullName:    "John Doe",
		Email:       "john@example.com",
		Description: "vip",
	}

	var stored entity.Client

	repo.EXPECT().CreateClient(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, client entity.Client) error {
			stored = client
			return nil
		})
	producer.EXPECT().SendClientCreated(ctx, gomock.Any())

	client, err := s.CreateClient(ctx, input)
	r.NoError(err)

	r.False(client.ID.IsNil())
	r.False(client.CreatedAt.IsZero())
	r.Equal(input.FullName, client.FullName)
	r.Equal(input.Email, client.Email)
	r.Equal(input.Description, client.Description)
	r.Equal(stored, client)
}

func TestService_UpdateClient(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, _ := newTestService(t)
	ctx := context.Background()

	existing := entity.Client{
		ID:          uuid.Must(uuid.NewV4()),
		FullName:    "John Doe",
		Email:       "john@example.com",
		Description: "old",
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	input := entity.ClientInput{
		FullName:    "John Updated",
		Email:       "john.updated@example.com",
		Description: "new",
	}

	repo.EXPECT().ClientByID(ctx, existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateClient(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, client entity.Client) error {
			require.Equal(t, existing.ID, client.ID)
			require.Equal(t, existing.CreatedAt, client.CreatedAt)
			return nil
		})

	updated, err := s.UpdateClient(ctx, existing.ID, input)
	r.NoError(err)

	r.Equal(existing.ID, updated.ID)
	r.Equal(existing.CreatedAt, updated.CreatedAt)
	r.Equal(input.FullName, updated.FullName)
	r.Equal(input.Email, updated.Email)
	r.Equal(input.Description, updated.Description)
}

func TestService_UpdateClient_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, _ := newTestService(t)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())

	repo.EXPECT().ClientByID(ctx, id).Return(entity.Client{}, entity.ErrNotFound)

	_, err := s.UpdateClient(ctx, id, entity.ClientInput{})
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_DeleteClient(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, producer := newTestService(t)
	ctx := context.Background()

	client := entity.Client{
		ID:        uuid.Must(uuid.NewV4()),
		FullName:  "John Doe",
		CreatedAt: time.Now(),
	}

	repo.EXPECT().ClientByID(ctx, client.ID).Return(client, nil)
	repo.EXPECT().DeleteClient(ctx, client.ID).Return(nil)
	producer.EXPECT().SendClientDeleted(ctx, client.ID)

	deletedID, err := s.DeleteClient(ctx, client.ID)
	r.NoError(err)
	r.Equal(client.ID, deletedID)
}

func TestService_DeleteClient_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, _ := newTestService(t)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())

	repo.EXPECT().ClientByID(ctx, id).Return(entity.Client{}, entity.ErrNotFound)

	_, err := s.DeleteClient(ctx, id)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_RequestsByClientID_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, _ := newTestService(t)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())

	repo.EXPECT().ClientByID(ctx, id).Return(entity.Client{}, entity.ErrNotFound)

	_, err := s.RequestsByClientID(ctx, id)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_CreateRequest_UnknownClient(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, _ := newTestService(t)
	ctx := context.Background()

	clientID := uuid.Must(uuid.NewV4())

	repo.EXPECT().ClientByID(ctx, clientID).Return(entity.Client{}, entity.ErrNotFound)

	_, err := s.CreateRequest(ctx, entity.RequestInput{
		FullName: "John Doe",
		Title:    "help",
		Status:   entity.RequestStatusNew,
		ClientID: uuid.NullUUID{UUID: clientID, Valid: true},
	})
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_CreateRequest_WithoutClient(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	s, repo, _ := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().CreateRequest(ctx, gomock.Any()).Return(nil)

	request, err := s.CreateRequest(ctx, entity.RequestInput{
		FullName: "John Doe",
		Title:    "help",
		Status:   entity.RequestStatusNew,
	})
	r.NoError(err)
	r.False(request.ID.IsNil())
	r.False(request.ClientID.Valid)
}
