package service

import (
	"context"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateDriverRequest is the payload for creating or replacing a driver
type CreateDriverRequest struct {
	FirstName           string             `json:"first_name" validate:"required,max=50"`
	LastName            string             `json:"last_name" validate:"required,max=50"`
	Nationality         models.Nationality `json:"nationality" validate:"omitempty,oneof='USA' 'Viet Nam'"`
	HomeAddressID       *uuid.UUID         `json:"home_address_id"`
	ManagementAddressID *uuid.UUID         `json:"management_address_id"`
	TeamIDs             []uuid.UUID        `json:"team_ids"`
}

// UpdateDriverRequest is the payload for partially updating a driver
type UpdateDriverRequest struct {
	FirstName           *string             `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName            *string             `json:"last_name" validate:"omitempty,min=1,max=50"`
	Nationality         *models.Nationality `json:"nationality" validate:"omitempty,oneof='USA' 'Viet Nam'"`
	HomeAddressID       NullableID          `json:"home_address_id" swaggertype:"string" format:"uuid"`
	ManagementAddressID NullableID          `json:"management_address_id" swaggertype:"string" format:"uuid"`
	TeamIDs             *[]uuid.UUID        `json:"team_ids"`
}

// DriverService handles business logic for drivers
type DriverService struct {
	entityService[models.Driver]
	addresses repository.Repository[models.Address]
	teams     repository.Repository[models.Team]
}

var _ DriverServiceInterface = (*DriverService)(nil)

// NewDriverService creates a new driver service
func NewDriverService(drivers repository.Repository[models.Driver], addresses repository.Repository[models.Address], teams repository.Repository[models.Team], validator *validator.Validate) *DriverService {
	return &DriverService{
		entityService: entityService[models.Driver]{
			CrudService: NewCrudService(drivers, "driver",
				"HomeAddress", "ManagementAddress", "Teams", "Results"),
			validator: validator,
			notFound:  apperrors.ErrDriverNotFound,
			sortable:  []string{"first_name", "last_name", "nationality", "created_at"},
		},
		addresses: addresses,
		teams:     teams,
	}
}

// Create creates a new driver and links the listed teams
func (s *DriverService) Create(ctx context.Context, req *CreateDriverRequest) (*models.Driver, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	driver := &models.Driver{}
	applyDriver(driver, req)

	var teamIDs *[]uuid.UUID
	if len(req.TeamIDs) > 0 {
		teamIDs = &req.TeamIDs
	}
	return s.persist(ctx, driver, teamIDs)
}

// Replace overwrites an existing driver, including its team list
func (s *DriverService) Replace(ctx context.Context, id uuid.UUID, req *CreateDriverRequest) (*models.Driver, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	driver, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	applyDriver(driver, req)
	return s.persist(ctx, driver, &req.TeamIDs)
}

// Update changes the fields present in req
func (s *DriverService) Update(ctx context.Context, id uuid.UUID, req *UpdateDriverRequest) (*models.Driver, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	driver, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch(&driver.FirstName, req.FirstName)
	patch(&driver.LastName, req.LastName)
	patch(&driver.Nationality, req.Nationality)
	patchRef(&driver.HomeAddressID, req.HomeAddressID)
	patchRef(&driver.ManagementAddressID, req.ManagementAddressID)
	return s.persist(ctx, driver, req.TeamIDs)
}

// persist checks references, saves the driver and, when teamIDs is set,
// replaces its teams with the ones that exist
func (s *DriverService) persist(ctx context.Context, driver *models.Driver, teamIDs *[]uuid.UUID) (*models.Driver, error) {
	if err := requireRef(ctx, s.addresses, "home_address_id", driver.HomeAddressID); err != nil {
		return nil, err
	}
	if err := requireRef(ctx, s.addresses, "management_address_id", driver.ManagementAddressID); err != nil {
		return nil, err
	}

	var teams []models.Team
	if teamIDs != nil {
		var err error
		if teams, err = s.teams.FindByIDs(ctx, *teamIDs); err != nil {
			return nil, err
		}
	}

	if err := s.Save(ctx, driver); err != nil {
		return nil, err
	}
	if teamIDs != nil {
		if err := s.ReplaceAssociation(ctx, driver, "Teams", teams); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, driver.ID)
}

func applyDriver(driver *models.Driver, req *CreateDriverRequest) {
	driver.FirstName = req.FirstName
	driver.LastName = req.LastName
	driver.Nationality = req.Nationality.OrDefault()
	driver.HomeAddressID = req.HomeAddressID
	driver.ManagementAddressID = req.ManagementAddressID
}
