package service

import (
	"context"
	"fmt"

	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// entityService carries the read and delete operations every entity shares
type entityService[T any] struct {
	*CrudService[T]
	validator     *validator.Validate
	notFound      error
	sortable      []string
	listRelations []string
}

// List returns one page of entities
func (s *entityService[T]) List(ctx context.Context, q ListQuery) (*ListResult[T], error) {
	order, err := ParseSort(q.Sort, s.sortable...)
	if err != nil {
		return nil, err
	}
	return s.FindAll(ctx, &FindOptions{
		Relations:  s.listRelations,
		Pagination: q.Pagination(),
		Order:      order,
	})
}

// Get returns one entity with its detail relations
func (s *entityService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.FindByID(ctx, id)
}

// Delete removes the entity; removing nothing is reported as not found
func (s *entityService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.CrudService.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.notFound
	}
	return nil
}

// existing loads the row a replace or update targets, without relations
func (s *entityService[T]) existing(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.FindOne(ctx, map[string]interface{}{"id": id})
}

// requireRef checks that an optional single reference points at an existing row
func requireRef[R any](ctx context.Context, repo repository.Repository[R], field string, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := repo.FindOne(ctx, map[string]interface{}{"id": *id}); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidationError(field, fmt.Sprintf("%s does not exist", *id))
		}
		return err
	}
	return nil
}
