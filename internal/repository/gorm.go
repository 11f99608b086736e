package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultOrder keeps pagination stable when the caller does not sort
var defaultOrder = []Order{{Field: "created_at"}, {Field: "id"}}

// GormRepository implements Repository for any model embedding models.BaseModel
type GormRepository[T any] struct {
	db     *gorm.DB
	entity string
}

var _ Repository[models.Driver] = (*GormRepository[models.Driver])(nil)

// NewRepository creates a gorm-backed repository; entity names the model in errors
func NewRepository[T any](db *gorm.DB, entity string) *GormRepository[T] {
	return &GormRepository[T]{db: db, entity: entity}
}

// FindOne returns the first row matching where, eager-loading relations
func (r *GormRepository[T]) FindOne(ctx context.Context, where map[string]interface{}, relations ...string) (*T, error) {
	var entity T
	tx := preload(r.scope(ctx, where), relations)
	if err := tx.First(&entity).Error; err != nil {
		return nil, r.translate(err)
	}
	return &entity, nil
}

// FindMany returns one page of rows plus the total number of matching rows
func (r *GormRepository[T]) FindMany(ctx context.Context, q Query) ([]T, int64, error) {
	var total int64
	if err := r.scope(ctx, q.Where).Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, r.translate(err)
	}

	order := q.Order
	if len(order) == 0 {
		order = defaultOrder
	}

	tx := preload(r.scope(ctx, q.Where), q.Relations)
	for _, o := range order {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	items := make([]T, 0)
	if err := tx.Find(&items).Error; err != nil {
		return nil, 0, r.translate(err)
	}
	return items, total, nil
}

// FindByIDs returns the rows that exist for ids, in request order.
// Unknown ids are skipped and duplicates collapse.
func (r *GormRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID, relations ...string) ([]T, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return []T{}, nil
	}

	var rows []T
	tx := preload(r.db.WithContext(ctx), relations)
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, r.translate(err)
	}

	byID := lo.KeyBy(rows, func(row T) uuid.UUID {
		return idOf(&row)
	})
	return lo.FilterMap(ids, func(id uuid.UUID, _ int) (T, bool) {
		row, ok := byID[id]
		return row, ok
	}), nil
}

// Save inserts or fully replaces entity. Associations are not written.
func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.save(tx, entity)
	})
}

// SaveMany saves every entity in a single transaction
func (r *GormRepository[T]) SaveMany(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entity := range entities {
			if err := r.save(tx, entity); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the row with id and reports how many rows were removed
func (r *GormRepository[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return 0, r.translate(res.Error)
	}
	return res.RowsAffected, nil
}

// ReplaceAssociation sets the named many-to-many or has-many association to values
func (r *GormRepository[T]) ReplaceAssociation(ctx context.Context, entity *T, name string, values interface{}) error {
	assoc := r.db.WithContext(ctx).Model(entity).Association(name)
	if assoc.Error != nil {
		return fmt.Errorf("%s repository: association %s: %w", r.entity, name, assoc.Error)
	}

	rv := reflect.ValueOf(values)
	if values == nil || (rv.Kind() == reflect.Slice && rv.Len() == 0) {
		return r.translate(assoc.Clear())
	}
	return r.translate(assoc.Replace(values))
}

func (r *GormRepository[T]) save(tx *gorm.DB, entity *T) error {
	ident, ok := any(entity).(models.Identifiable)
	if !ok {
		return fmt.Errorf("%s repository: %T has no primary key accessor", r.entity, entity)
	}

	if id := ident.GetID(); id != uuid.Nil {
		var n int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
			return r.translate(err)
		}
		if n > 0 {
			return r.translate(tx.Omit(clause.Associations, "created_at").Save(entity).Error)
		}
		// unknown ids are never adopted
		ident.SetID(uuid.New())
	}

	return r.translate(tx.Omit(clause.Associations).Create(entity).Error)
}

func (r *GormRepository[T]) scope(ctx context.Context, where map[string]interface{}) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if len(where) > 0 {
		tx = tx.Where(where)
	}
	return tx
}

func (r *GormRepository[T]) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(r.entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewAlreadyExistsError(r.entity, "")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewValidationError(r.entity, "references a record that does not exist")
	}
	return fmt.Errorf("%s repository: %w", r.entity, err)
}

func preload(tx *gorm.DB, relations []string) *gorm.DB {
	for _, rel := range relations {
		tx = tx.Preload(rel)
	}
	return tx
}

func idOf[T any](entity *T) uuid.UUID {
	if ident, ok := any(entity).(models.Identifiable); ok {
		return ident.GetID()
	}
	return uuid.Nil
}
