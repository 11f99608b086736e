package service

import (
	"context"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateClassRequest is the payload for creating or replacing a class
type CreateClassRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateClassRequest is the payload for partially updating a class
type UpdateClassRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

// ClassService handles business logic for racing classes
type ClassService struct {
	entityService[models.Class]
}

var _ ClassServiceInterface = (*ClassService)(nil)

// NewClassService creates a new class service
func NewClassService(repo repository.Repository[models.Class], validator *validator.Validate) *ClassService {
	return &ClassService{entityService[models.Class]{
		CrudService: NewCrudService(repo, "class"),
		validator:   validator,
		notFound:    apperrors.ErrClassNotFound,
		sortable:    []string{"name", "created_at"},
	}}
}

// Create creates a new class
func (s *ClassService) Create(ctx context.Context, req *CreateClassRequest) (*models.Class, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	class := &models.Class{Name: req.Name}
	if err := s.Save(ctx, class); err != nil {
		return nil, err
	}
	return s.Get(ctx, class.ID)
}

// Replace overwrites an existing class
func (s *ClassService) Replace(ctx context.Context, id uuid.UUID, req *CreateClassRequest) (*models.Class, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	return s.Update(ctx, id, &UpdateClassRequest{Name: &req.Name})
}

// Update changes the fields present in req
func (s *ClassService) Update(ctx context.Context, id uuid.UUID, req *UpdateClassRequest) (*models.Class, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	class, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch(&class.Name, req.Name)
	if err := s.Save(ctx, class); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
