package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Client struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	Description string
	CreatedAt   time.Time
}

// ClientInput carries the three mutable client fields; id and createdAt
// are assigned by the repository and never accepted from callers.
type ClientInput struct {
	FullName    string
	Email       string
	Description string
}
