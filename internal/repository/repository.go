package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidType is returned when a repository receives a resource of another kind.
	ErrInvalidType = errors.New("invalid resource type")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("resource not found")
)

// Repository defines the interface for a generic repository that can manage resources.
type Repository interface {
	Create(ctx context.Context, resource Resource) (result Resource, err error)
	List(ctx context.Context, query Query) (result []Resource, err error)
}

// EventRepository is a Repository of outbox events that can also move an event
// to its next status.
type EventRepository interface {
	Repository
	UpdateStatus(ctx context.Context, eventID uuid.UUID, status any) error
}

// Resource represents a generic resource that can be managed by the repository.
type Resource interface {
	InitMeta()
}

// UniqueConstraintError represents a database unique constraint violation error.
type UniqueConstraintError struct {
	Detail string
}

func (u *UniqueConstraintError) Error() string {
	return "resource must be unique: " + u.Detail
}
