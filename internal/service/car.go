package service

import (
	"context"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateCarRequest is the payload for creating or replacing a car
type CreateCarRequest struct {
	Make    string     `json:"make" validate:"required,max=40"`
	Model   string     `json:"model" validate:"required,max=40"`
	ClassID *uuid.UUID `json:"class_id"`
	TeamID  *uuid.UUID `json:"team_id"`
}

// UpdateCarRequest is the payload for partially updating a car
type UpdateCarRequest struct {
	Make    *string    `json:"make" validate:"omitempty,min=1,max=40"`
	Model   *string    `json:"model" validate:"omitempty,min=1,max=40"`
	ClassID NullableID `json:"class_id" swaggertype:"string" format:"uuid"`
	TeamID  NullableID `json:"team_id" swaggertype:"string" format:"uuid"`
}

// CarService handles business logic for cars
type CarService struct {
	entityService[models.Car]
	classes repository.Repository[models.Class]
	teams   repository.Repository[models.Team]
}

var _ CarServiceInterface = (*CarService)(nil)

// NewCarService creates a new car service
func NewCarService(cars repository.Repository[models.Car], classes repository.Repository[models.Class], teams repository.Repository[models.Team], validator *validator.Validate) *CarService {
	return &CarService{
		entityService: entityService[models.Car]{
			CrudService:   NewCrudService(cars, "car", "Class", "Team", "Results"),
			validator:     validator,
			notFound:      apperrors.ErrCarNotFound,
			sortable:      []string{"make", "model", "created_at"},
			listRelations: []string{"Class", "Team"},
		},
		classes: classes,
		teams:   teams,
	}
}

// Create creates a new car
func (s *CarService) Create(ctx context.Context, req *CreateCarRequest) (*models.Car, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	car := &models.Car{}
	applyCar(car, req)
	return s.persist(ctx, car)
}

// Replace overwrites an existing car
func (s *CarService) Replace(ctx context.Context, id uuid.UUID, req *CreateCarRequest) (*models.Car, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	car, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCar(car, req)
	return s.persist(ctx, car)
}

// Update changes the fields present in req
func (s *CarService) Update(ctx context.Context, id uuid.UUID, req *UpdateCarRequest) (*models.Car, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	car, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch(&car.Make, req.Make)
	patch(&car.Model, req.Model)
	patchRef(&car.ClassID, req.ClassID)
	patchRef(&car.TeamID, req.TeamID)
	return s.persist(ctx, car)
}

func (s *CarService) persist(ctx context.Context, car *models.Car) (*models.Car, error) {
	if err := requireRef(ctx, s.classes, "class_id", car.ClassID); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.teams, "team_id", car.TeamID); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, car); err != nil {
		return nil, err
	}
	return s.Get(ctx, car.ID)
}

func applyCar(car *models.Car, req *CreateCarRequest) {
	car.Make = req.Make
	car.Model = req.Model
	car.ClassID = req.ClassID
	car.TeamID = req.TeamID
}
