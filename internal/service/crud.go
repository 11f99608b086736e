package service

import (
	"context"
	"fmt"

	"motorsport-backend/internal/logger"
	"motorsport-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultPageSize applies when pagination is requested without a page size
const DefaultPageSize = 20

// MaxPageSize bounds page_size on the HTTP surface
const MaxPageSize = 100

// Pagination selects one page; CurrentPage is 1-based
type Pagination struct {
	PageSize    int
	CurrentPage int
}

// LimitOffset translates the page into a limit and offset
func (p Pagination) LimitOffset() (limit, offset int) {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := p.CurrentPage
	if page < 1 {
		page = 1
	}
	return size, size * (page - 1)
}

// FindOptions narrows a FindAll call. The zero value returns every row.
type FindOptions struct {
	Where      map[string]interface{}
	Relations  []string
	Pagination *Pagination
	Order      []repository.Order
}

// ListResult is the list envelope returned by every collection endpoint
type ListResult[T any] struct {
	Data  []T   `json:"data"`
	Count int64 `json:"count"`
}

// CrudService provides the generic create/read/update/delete operations on top of a Repository
type CrudService[T any] struct {
	repo            repository.Repository[T]
	entity          string
	detailRelations []string
}

// NewCrudService creates a CrudService; detailRelations are eager-loaded by FindByID
func NewCrudService[T any](repo repository.Repository[T], entity string, detailRelations ...string) *CrudService[T] {
	return &CrudService[T]{
		repo:            repo,
		entity:          entity,
		detailRelations: detailRelations,
	}
}

// FindByID returns the entity with its detail relations or a NotFoundError
func (s *CrudService[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.FindOne(ctx, map[string]interface{}{"id": id}, s.detailRelations...)
}

// FindAll returns the matching entities and the total count ignoring pagination
func (s *CrudService[T]) FindAll(ctx context.Context, opts *FindOptions) (*ListResult[T], error) {
	var q repository.Query
	if opts != nil {
		q.Where = opts.Where
		q.Relations = opts.Relations
		q.Order = opts.Order
		if opts.Pagination != nil {
			q.Limit, q.Offset = opts.Pagination.LimitOffset()
		}
	}

	items, count, err := s.repo.FindMany(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.entity, err)
	}
	return &ListResult[T]{Data: items, Count: count}, nil
}

// FindByIDs returns the entities that exist among ids; missing ids are omitted
func (s *CrudService[T]) FindByIDs(ctx context.Context, ids []uuid.UUID, relations ...string) ([]T, error) {
	items, err := s.repo.FindByIDs(ctx, ids, relations...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s by ids: %w", s.entity, err)
	}
	return items, nil
}

// Save inserts entity, or replaces the stored row when its id already exists
func (s *CrudService[T]) Save(ctx context.Context, entity *T) error {
	if err := s.repo.Save(ctx, entity); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.entity, err)
	}
	logger.WithContext(ctx).WithField("entity", s.entity).WithField("id", idOf(entity)).Info("saved")
	return nil
}

// SaveMany saves every entity in one transaction
func (s *CrudService[T]) SaveMany(ctx context.Context, entities []*T) error {
	if err := s.repo.SaveMany(ctx, entities); err != nil {
		return fmt.Errorf("failed to save %s batch: %w", s.entity, err)
	}
	logger.WithContext(ctx).WithField("entity", s.entity).WithField("count", len(entities)).Info("saved batch")
	return nil
}

// Delete removes the entity and reports how many rows were removed; a missing id yields 0
func (s *CrudService[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	if affected > 0 {
		logger.WithContext(ctx).WithField("entity", s.entity).WithField("id", id).Info("deleted")
	}
	return affected, nil
}

// ReplaceAssociation sets a to-many association of entity
func (s *CrudService[T]) ReplaceAssociation(ctx context.Context, entity *T, name string, values interface{}) error {
	if err := s.repo.ReplaceAssociation(ctx, entity, name, values); err != nil {
		return fmt.Errorf("failed to update %s %s: %w", s.entity, name, err)
	}
	return nil
}

func idOf[T any](entity *T) uuid.UUID {
	if ident, ok := any(entity).(interface{ GetID() uuid.UUID }); ok {
		return ident.GetID()
	}
	return uuid.Nil
}
