package repository

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Order is a single ORDER BY term
type Order struct {
	Field string
	Desc  bool
}

// Query is the repository-level form of a list request
type Query struct {
	Where     map[string]interface{}
	Relations []string
	Limit     int
	Offset    int
	Order     []Order
}

// Repository defines the persistence operations shared by every entity
type Repository[T any] interface {
	FindOne(ctx context.Context, where map[string]interface{}, relations ...string) (*T, error)
	FindMany(ctx context.Context, q Query) ([]T, int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, relations ...string) ([]T, error)
	Save(ctx context.Context, entity *T) error
	SaveMany(ctx context.Context, entities []*T) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ReplaceAssociation(ctx context.Context, entity *T, name string, values interface{}) error
}
