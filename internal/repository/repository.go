package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samandr77/crm/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Clients(ctx context.Context) ([]entity.Client, error) {
	stmt := sq.Select(
		"id",
		"full_name",
		"email",
		"description",
		"created_at",
	).From("clients").OrderBy("created_at DESC").PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	clients := make([]entity.Client, 0)

	for rows.Next() {
		var client entity.Client

		err = rows.Scan(
			&client.ID,
			&client.FullName,
			&client.Email,
			&client.Description,
			&client.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *Repository) ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	sqlQuery := `
		SELECT id, full_name, email, description, created_at
		FROM clients
		WHERE id = $1`

	var client entity.Client

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&client.ID,
		&client.FullName,
		&client.Email,
		&client.Description,
		&client.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Client{}, entity.ErrNotFound
		}

		return entity.Client{}, err
	}

	return client, nil
}

// CreateClient persists the record as-is: the service assigns id and
// createdAt before calling it.
func (r *Repository) CreateClient(ctx context.Context, client entity.Client) error {
	sqlQuery :=
		`INSERT INTO clients
			(id, full_name, email, description, created_at)
		VALUES
			($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, sqlQuery,
		client.ID,
		client.FullName,
		client.Email,
		client.Description,
		client.CreatedAt,
	)

	if err != nil {
		return err
	}

	return nil
}

// UpdateClient overwrites the mutable columns only, id and created_at are
// never touched.
func (r *Repository) UpdateClient(ctx context.Context, client entity.Client) error {
	sqlQuery :=
		`UPDATE clients
		SET full_name = $1, email = $2, description = $3
		WHERE id = $4`

	_, err := r.db.Exec(ctx, sqlQuery,
		client.FullName,
		client.Email,
		client.Description,
		client.ID,
	)

	if err != nil {
		return err
	}

	return nil
}

// DeleteClient removes the row; dependent requests go with it through the
// ON DELETE CASCADE foreign key.
func (r *Repository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	sqlQuery := `DELETE FROM clients WHERE id = $1`

	_, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) RequestsByClientID(ctx context.Context, clientID uuid.UUID) ([]entity.Request, error) {
	stmt := sq.Select(
		"id",
		"full_name",
		"title",
		"status",
		"client_id",
		"comment",
		"created_at",
	).From("requests").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	requests := make([]entity.Request, 0)

	for rows.Next() {
		var request entity.Request

		err = rows.Scan(
			&request.ID,
			&request.FullName,
			&request.Title,
			&request.Status,
			&request.ClientID,
			&request.Comment,
			&request.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	return requests, rows.Err()
}

func (r *Repository) CreateRequest(ctx context.Context, request entity.Request) error {
	sqlQuery :=
		`INSERT INTO requests
			(id, full_name, title, status, client_id, comment, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, sqlQuery,
		request.ID,
		request.FullName,
		request.Title,
		request.Status,
		request.ClientID,
		request.Comment,
		request.CreatedAt,
	)

	if err != nil {
		return err
	}

	return nil
}
