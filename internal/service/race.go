package service

import (
	"context"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/logger"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateRaceRequest is the payload for creating or replacing a race.
// Results are only accepted on creation; later changes go through the results routes.
type CreateRaceRequest struct {
	Name     string            `json:"name" validate:"required,max=100"`
	ClassIDs []uuid.UUID       `json:"class_ids"`
	Results  []RaceResultInput `json:"results,omitempty" validate:"omitempty,dive"`
}

// UpdateRaceRequest is the payload for partially updating a race
type UpdateRaceRequest struct {
	Name     *string      `json:"name" validate:"omitempty,min=1,max=100"`
	ClassIDs *[]uuid.UUID `json:"class_ids"`
}

// RaceService handles business logic for races
type RaceService struct {
	entityService[models.Race]
	classes repository.Repository[models.Class]
	results RaceResultServiceInterface
}

var _ RaceServiceInterface = (*RaceService)(nil)

// NewRaceService creates a new race service
func NewRaceService(races repository.Repository[models.Race], classes repository.Repository[models.Class], results RaceResultServiceInterface, validator *validator.Validate) *RaceService {
	return &RaceService{
		entityService: entityService[models.Race]{
			CrudService: NewCrudService(races, "race",
				"Classes", "Results", "Results.Car", "Results.Driver", "Results.Class"),
			validator: validator,
			notFound:  apperrors.ErrRaceNotFound,
			sortable:  []string{"name", "created_at"},
		},
		classes: classes,
		results: results,
	}
}

// Create creates a race with its classes and any initial results
func (s *RaceService) Create(ctx context.Context, req *CreateRaceRequest) (*models.Race, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	race := &models.Race{Name: req.Name}

	var classIDs *[]uuid.UUID
	if len(req.ClassIDs) > 0 {
		classIDs = &req.ClassIDs
	}
	if err := s.persist(ctx, race, classIDs); err != nil {
		return nil, err
	}

	if len(req.Results) > 0 {
		if _, err := s.results.AddToRace(ctx, race.ID, req.Results); err != nil {
			// a race is created together with its results or not at all
			if _, delErr := s.CrudService.Delete(ctx, race.ID); delErr != nil {
				logger.WithContext(ctx).WithError(delErr).WithField("race_id", race.ID).Error("failed to roll back race")
			}
			return nil, err
		}
	}
	return s.Get(ctx, race.ID)
}

// Replace overwrites the name and class list of an existing race; results are kept
func (s *RaceService) Replace(ctx context.Context, id uuid.UUID, req *CreateRaceRequest) (*models.Race, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if len(req.Results) > 0 {
		return nil, apperrors.NewValidationError("results", "use PUT /races/{id}/results to add results")
	}
	race, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	race.Name = req.Name
	if err := s.persist(ctx, race, &req.ClassIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update changes the fields present in req
func (s *RaceService) Update(ctx context.Context, id uuid.UUID, req *UpdateRaceRequest) (*models.Race, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	race, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch(&race.Name, req.Name)
	if err := s.persist(ctx, race, req.ClassIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *RaceService) persist(ctx context.Context, race *models.Race, classIDs *[]uuid.UUID) error {
	var classes []models.Class
	if classIDs != nil {
		var err error
		if classes, err = s.classes.FindByIDs(ctx, *classIDs); err != nil {
			return err
		}
	}

	if err := s.Save(ctx, race); err != nil {
		return err
	}
	if classIDs != nil {
		return s.ReplaceAssociation(ctx, race, "Classes", classes)
	}
	return nil
}
