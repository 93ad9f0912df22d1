package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type RequestStatus string

const (
	RequestStatusNew  RequestStatus = "1"
	RequestStatusDone RequestStatus = "2"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusNew, RequestStatusDone:
		return true
	default:
		return false
	}
}

type Request struct {
	ID        uuid.UUID
	FullName  string
	Title     string
	Status    RequestStatus
	ClientID  uuid.NullUUID
	Comment   string
	CreatedAt time.Time
}

type RequestInput struct {
	FullName string
	Title    string
	Status   RequestStatus
	ClientID uuid.NullUUID
	Comment  string
}
