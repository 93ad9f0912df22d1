package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/crm/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Clients(ctx context.Context) ([]entity.Client, error)
	ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error)
	CreateClient(ctx context.Context, client entity.Client) error
	UpdateClient(ctx context.Context, client entity.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	RequestsByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Request, error)
	CreateRequest(ctx context.Context, request entity.Request) error
}

type Producer interface {
	SendClientCreated(ctx context.Context, clientID uuid.UUID)
	SendClientDeleted(ctx context.Context, clientID uuid.UUID)
}

type Service struct {
	repo     Repository
	producer Producer
}

func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
	}
}

func (s *Service) Clients(ctx context.Context) ([]entity.Client, error) {
	clients, err := s.repo.Clients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

func (s *Service) ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	return s.repo.ClientByID(ctx, id)
}

func (s *Service) CreateClient(ctx context.Context, input entity.ClientInput) (entity.Client, error) {
	client := entity.Client{
		ID:          uuid.Must(uuid.NewV4()),
		FullName:    input.FullName,
		Email:       input.Email,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.producer.SendClientCreated(ctx, client.ID)

	slog.InfoContext(ctx, "client created", "client_id", client.ID)

	return client, nil
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, input entity.ClientInput) (entity.Client, error) {
	client, err := s.repo.ClientByID(ctx, id)
	if err != nil {
		return entity.Client{}, err
	}

	client.FullName = input.FullName
	client.Email = input.Email
	client.Description = input.Description

	err = s.repo.UpdateClient(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	client, err := s.repo.ClientByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.repo.DeleteClient(ctx, client.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("delete client: %w", err)
	}

	s.producer.SendClientDeleted(ctx, client.ID)

	slog.InfoContext(ctx, "client deleted", "client_id", client.ID)

	return client.ID, nil
}

func (s *Service) RequestsByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Request, error) {
	_, err := s.repo.ClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.RequestsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return requests, nil
}

func (s *Service) CreateRequest(ctx context.Context, input entity.RequestInput) (entity.Request, error) {
	if input.ClientID.Valid {
		_, err := s.repo.ClientByID(ctx, input.ClientID.UUID)
		if err != nil {
			return entity.Request{}, err
		}
	}

	request := entity.Request{
		ID:        uuid.Must(uuid.NewV4()),
		FullName:  input.FullName,
		Title:     input.Title,
		Status:    input.Status,
		ClientID:  input.ClientID,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	err := s.repo.CreateRequest(ctx, request)
	if err != nil {
		return entity.Request{}, fmt.Errorf("create request: %w", err)
	}

	return request, nil
}
