package service

import (
	"context"
	"errors"
	"fmt"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// RaceResultInput describes one result inside a race payload
type RaceResultInput struct {
	CarNumber         int        `json:"car_number" validate:"min=0,max=999"`
	StartingPosition  int        `json:"starting_position" validate:"min=0"`
	FinishingPosition int        `json:"finishing_position" validate:"min=0"`
	IsFinished        bool       `json:"is_finished"`
	CarID             *uuid.UUID `json:"car_id" validate:"required"`
	DriverID          *uuid.UUID `json:"driver_id" validate:"required"`
	ClassID           *uuid.UUID `json:"class_id"`
}

// CreateRaceResultRequest is the payload for creating or replacing a standalone race result
type CreateRaceResultRequest struct {
	RaceResultInput
	RaceID *uuid.UUID `json:"race_id" validate:"required"`
}

// AddRaceResultsRequest is the payload for adding results to an existing race
type AddRaceResultsRequest struct {
	Results []RaceResultInput `json:"results" validate:"required,min=1,dive"`
}

// UpdateRaceResultRequest is the payload for partially updating a race result
type UpdateRaceResultRequest struct {
	CarNumber         *int       `json:"car_number" validate:"omitempty,min=0,max=999"`
	StartingPosition  *int       `json:"starting_position" validate:"omitempty,min=0"`
	FinishingPosition *int       `json:"finishing_position" validate:"omitempty,min=0"`
	IsFinished        *bool      `json:"is_finished"`
	CarID             NullableID `json:"car_id" swaggertype:"string" format:"uuid"`
	DriverID          NullableID `json:"driver_id" swaggertype:"string" format:"uuid"`
	ClassID           NullableID `json:"class_id" swaggertype:"string" format:"uuid"`
}

// RaceResultService handles business logic for race results
type RaceResultService struct {
	entityService[models.RaceResult]
	races   repository.Repository[models.Race]
	cars    repository.Repository[models.Car]
	drivers repository.Repository[models.Driver]
	classes repository.Repository[models.Class]
}

var _ RaceResultServiceInterface = (*RaceResultService)(nil)

var resultRelations = []string{"Car", "Race", "Driver", "Class"}

// NewRaceResultService creates a new race result service
func NewRaceResultService(
	results repository.Repository[models.RaceResult],
	races repository.Repository[models.Race],
	cars repository.Repository[models.Car],
	drivers repository.Repository[models.Driver],
	classes repository.Repository[models.Class],
	validator *validator.Validate,
) *RaceResultService {
	return &RaceResultService{
		entityService: entityService[models.RaceResult]{
			CrudService:   NewCrudService(results, "race result", resultRelations...),
			validator:     validator,
			notFound:      apperrors.ErrRaceResultNotFound,
			sortable:      []string{"car_number", "starting_position", "finishing_position", "created_at"},
			listRelations: resultRelations,
		},
		races:   races,
		cars:    cars,
		drivers: drivers,
		classes: classes,
	}
}

// Create creates a standalone race result
func (s *RaceResultService) Create(ctx context.Context, req *CreateRaceResultRequest) (*models.RaceResult, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.races, "race_id", req.RaceID); err != nil {
		return nil, err
	}
	result := &models.RaceResult{}
	applyResult(result, &req.RaceResultInput)
	result.RaceID = req.RaceID
	return s.persist(ctx, result)
}

// Replace overwrites an existing race result
func (s *RaceResultService) Replace(ctx context.Context, id uuid.UUID, req *CreateRaceResultRequest) (*models.RaceResult, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.races, "race_id", req.RaceID); err != nil {
		return nil, err
	}
	result, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	applyResult(result, &req.RaceResultInput)
	result.RaceID = req.RaceID
	return s.persist(ctx, result)
}

// Update changes the fields present in req
func (s *RaceResultService) Update(ctx context.Context, id uuid.UUID, req *UpdateRaceResultRequest) (*models.RaceResult, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}
	result, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patchResult(result, req)
	return s.persist(ctx, result)
}

// ListBy lists results for the race, car or driver set in filter, narrowed by q
func (s *RaceResultService) ListBy(ctx context.Context, filter ResultFilter, q ResultQuery) (*ListResult[models.RaceResult], error) {
	if err := ValidateStruct(s.validator, &q); err != nil {
		return nil, err
	}
	if err := s.requireAnchor(ctx, filter); err != nil {
		return nil, err
	}

	where, err := filter.where(q)
	if err != nil {
		return nil, err
	}
	order, err := ParseSort(q.Sort, s.sortable...)
	if err != nil {
		return nil, err
	}
	return s.FindAll(ctx, &FindOptions{
		Where:      where,
		Relations:  s.listRelations,
		Pagination: q.Pagination(),
		Order:      order,
	})
}

// AddToRace creates results for an existing race in one transaction
func (s *RaceResultService) AddToRace(ctx context.Context, raceID uuid.UUID, inputs []RaceResultInput) ([]models.RaceResult, error) {
	for i := range inputs {
		if err := ValidateStruct(s.validator, &inputs[i]); err != nil {
			return nil, atIndex(i, err)
		}
	}
	if _, err := s.races.FindOne(ctx, map[string]interface{}{"id": raceID}); err != nil {
		return nil, err
	}

	results := make([]*models.RaceResult, 0, len(inputs))
	for i := range inputs {
		result := &models.RaceResult{}
		applyResult(result, &inputs[i])
		result.RaceID = &raceID
		if err := s.checkRefs(ctx, result); err != nil {
			return nil, atIndex(i, err)
		}
		results = append(results, result)
	}

	if err := s.SaveMany(ctx, results); err != nil {
		return nil, err
	}

	ids := lo.Map(results, func(r *models.RaceResult, _ int) uuid.UUID { return r.ID })
	return s.FindByIDs(ctx, ids, resultRelations...)
}

// UpdateInRace updates a result only if it belongs to the given race
func (s *RaceResultService) UpdateInRace(ctx context.Context, raceID, resultID uuid.UUID, req *UpdateRaceResultRequest) (*models.RaceResult, error) {
	if err := s.validateUpdate(req); err != nil {
		return nil, err
	}
	result, err := s.repo.FindOne(ctx, map[string]interface{}{"id": resultID, "race_id": raceID})
	if err != nil {
		return nil, err
	}
	patchResult(result, req)
	return s.persist(ctx, result)
}

// validateUpdate also rejects clearing car_id or driver_id, which every result needs
func (s *RaceResultService) validateUpdate(req *UpdateRaceResultRequest) error {
	if err := ValidateStruct(s.validator, req); err != nil {
		return err
	}
	if req.CarID.IsNull() {
		return apperrors.NewValidationError("car_id", "cannot be null")
	}
	if req.DriverID.IsNull() {
		return apperrors.NewValidationError("driver_id", "cannot be null")
	}
	return nil
}

func (s *RaceResultService) persist(ctx context.Context, result *models.RaceResult) (*models.RaceResult, error) {
	if err := s.checkRefs(ctx, result); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, result); err != nil {
		return nil, err
	}
	return s.Get(ctx, result.ID)
}

func (s *RaceResultService) checkRefs(ctx context.Context, result *models.RaceResult) error {
	if err := requireRef(ctx, s.cars, "car_id", result.CarID); err != nil {
		return err
	}
	if err := requireRef(ctx, s.drivers, "driver_id", result.DriverID); err != nil {
		return err
	}
	return requireRef(ctx, s.classes, "class_id", result.ClassID)
}

func (s *RaceResultService) requireAnchor(ctx context.Context, filter ResultFilter) error {
	if filter.RaceID != nil {
		if _, err := s.races.FindOne(ctx, map[string]interface{}{"id": *filter.RaceID}); err != nil {
			return err
		}
	}
	if filter.CarID != nil {
		if _, err := s.cars.FindOne(ctx, map[string]interface{}{"id": *filter.CarID}); err != nil {
			return err
		}
	}
	if filter.DriverID != nil {
		if _, err := s.drivers.FindOne(ctx, map[string]interface{}{"id": *filter.DriverID}); err != nil {
			return err
		}
	}
	return nil
}

func applyResult(result *models.RaceResult, in *RaceResultInput) {
	result.CarNumber = in.CarNumber
	result.StartingPosition = in.StartingPosition
	result.FinishingPosition = in.FinishingPosition
	result.IsFinished = in.IsFinished
	result.CarID = in.CarID
	result.DriverID = in.DriverID
	result.ClassID = in.ClassID
}

func patchResult(result *models.RaceResult, req *UpdateRaceResultRequest) {
	patch(&result.CarNumber, req.CarNumber)
	patch(&result.StartingPosition, req.StartingPosition)
	patch(&result.FinishingPosition, req.FinishingPosition)
	patch(&result.IsFinished, req.IsFinished)
	patchRef(&result.CarID, req.CarID)
	patchRef(&result.DriverID, req.DriverID)
	patchRef(&result.ClassID, req.ClassID)
}

// atIndex locates err at results[i] of a batch payload
func atIndex(i int, err error) error {
	prefix := fmt.Sprintf("results[%d]", i)
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Nested(prefix)
	}
	return fmt.Errorf("%s: %w", prefix, err)
}
