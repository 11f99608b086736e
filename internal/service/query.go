package service

import (
	"fmt"
	"strings"

	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ListQuery is the query string accepted by every collection endpoint
type ListQuery struct {
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
	Sort     string `form:"sort" validate:"omitempty,max=200"`
}

// Pagination returns the page selected by the query
func (q ListQuery) Pagination() *Pagination {
	return &Pagination{PageSize: q.PageSize, CurrentPage: q.Page}
}

// ResultQuery narrows race result listings
type ResultQuery struct {
	ListQuery
	RaceID   string `form:"race_id" validate:"omitempty,uuid"`
	CarID    string `form:"car_id" validate:"omitempty,uuid"`
	DriverID string `form:"driver_id" validate:"omitempty,uuid"`
}

// ResultFilter anchors a result listing to the entity in the path
type ResultFilter struct {
	RaceID   *uuid.UUID
	CarID    *uuid.UUID
	DriverID *uuid.UUID
}

// where merges the path anchor with the query filters; the anchor wins
func (f ResultFilter) where(q ResultQuery) (map[string]interface{}, error) {
	where := map[string]interface{}{}
	for column, raw := range map[string]string{"race_id": q.RaceID, "car_id": q.CarID, "driver_id": q.DriverID} {
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.NewValidationError(column, "must be a valid UUID")
		}
		where[column] = id
	}
	if f.RaceID != nil {
		where["race_id"] = *f.RaceID
	}
	if f.CarID != nil {
		where["car_id"] = *f.CarID
	}
	if f.DriverID != nil {
		where["driver_id"] = *f.DriverID
	}
	return where, nil
}

// ParseSort turns "name,-created_at" into an order list restricted to allowed fields
func ParseSort(sort string, allowed ...string) ([]repository.Order, error) {
	if strings.TrimSpace(sort) == "" {
		return nil, nil
	}

	terms := lo.Compact(lo.Map(strings.Split(sort, ","), func(term string, _ int) string {
		return strings.TrimSpace(term)
	}))

	order := make([]repository.Order, 0, len(terms))
	for _, term := range terms {
		o := repository.Order{Field: term}
		if strings.HasPrefix(term, "-") {
			o = repository.Order{Field: strings.TrimPrefix(term, "-"), Desc: true}
		}
		if !lo.Contains(allowed, o.Field) {
			return nil, apperrors.NewValidationError("sort", fmt.Sprintf("cannot sort by %q", o.Field))
		}
		order = append(order, o)
	}
	return order, nil
}
