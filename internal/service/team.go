package service

import (
	"context"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateTeamRequest is the payload for creating or replacing a team
type CreateTeamRequest struct {
	Name              string             `json:"name" validate:"required,max=150"`
	Nationality       models.Nationality `json:"nationality" validate:"omitempty,oneof='USA' 'Viet Nam'"`
	BusinessAddressID *uuid.UUID         `json:"business_address_id"`
	DriverIDs         []uuid.UUID        `json:"driver_ids"`
}

// UpdateTeamRequest is the payload for partially updating a team
type UpdateTeamRequest struct {
	Name              *string             `json:"name" validate:"omitempty,min=1,max=150"`
	Nationality       *models.Nationality `json:"nationality" validate:"omitempty,oneof='USA' 'Viet Nam'"`
	BusinessAddressID NullableID          `json:"business_address_id" swaggertype:"string" format:"uuid"`
	DriverIDs         *[]uuid.UUID        `json:"driver_ids"`
}

// TeamService handles business logic for teams
type TeamService struct {
	entityService[models.Team]
	addresses repository.Repository[models.Address]
	drivers   repository.Repository[models.Driver]
}

var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(teams repository.Repository[models.Team], addresses repository.Repository[models.Address], drivers repository.Repository[models.Driver], validator *validator.Validate) *TeamService {
	return &TeamService{
		entityService: entityService[models.Team]{
			CrudService: NewCrudService(teams, "team",
				"BusinessAddress", "Cars", "Cars.Class",
				"Drivers", "Drivers.HomeAddress", "Drivers.ManagementAddress", "Drivers.Teams"),
			validator: validator,
			notFound:  apperrors.ErrTeamNotFound,
			sortable:  []string{"name", "nationality", "created_at"},
		},
		addresses: addresses,
		drivers:   drivers,
	}
}

// Create creates a new team and links the listed drivers
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*models.Team, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	team := &models.Team{}
	applyTeam(team, req)

	var driverIDs *[]uuid.UUID
	if len(req.DriverIDs) > 0 {
		driverIDs = &req.DriverIDs
	}
	return s.persist(ctx, team, driverIDs)
}

// Replace overwrites an existing team, including its driver list
func (s *TeamService) Replace(ctx context.Context, id uuid.UUID, req *CreateTeamRequest) (*models.Team, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	team, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTeam(team, req)
	return s.persist(ctx, team, &req.DriverIDs)
}

// Update changes the fields present in req
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	team, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch(&team.Name, req.Name)
	patch(&team.Nationality, req.Nationality)
	patchRef(&team.BusinessAddressID, req.BusinessAddressID)
	return s.persist(ctx, team, req.DriverIDs)
}

// persist checks references, saves the team and, when driverIDs is set,
// replaces its drivers with the ones that exist
func (s *TeamService) persist(ctx context.Context, team *models.Team, driverIDs *[]uuid.UUID) (*models.Team, error) {
	if err := requireRef(ctx, s.addresses, "business_address_id", team.BusinessAddressID); err != nil {
		return nil, err
	}

	var drivers []models.Driver
	if driverIDs != nil {
		var err error
		if drivers, err = s.drivers.FindByIDs(ctx, *driverIDs); err != nil {
			return nil, err
		}
	}

	if err := s.Save(ctx, team); err != nil {
		return nil, err
	}
	if driverIDs != nil {
		if err := s.ReplaceAssociation(ctx, team, "Drivers", drivers); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, team.ID)
}

func applyTeam(team *models.Team, req *CreateTeamRequest) {
	team.Name = req.Name
	team.Nationality = req.Nationality.OrDefault()
	team.BusinessAddressID = req.BusinessAddressID
}
