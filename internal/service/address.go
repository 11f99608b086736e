package service

import (
	"context"

	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateAddressRequest is the payload for creating or replacing an address
type CreateAddressRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Street  string `json:"street" validate:"required,max=150"`
	Street2 string `json:"street2" validate:"max=150"`
	City    string `json:"city" validate:"required,max=40"`
	State   string `json:"state" validate:"required,max=40"`
	Zip     string `json:"zip" validate:"required,min=5,max=10"`
	Country string `json:"country" validate:"required,max=40"`
}

// UpdateAddressRequest is the payload for partially updating an address
type UpdateAddressRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=150"`
	Street  *string `json:"street" validate:"omitempty,min=1,max=150"`
	Street2 *string `json:"street2" validate:"omitempty,max=150"`
	City    *string `json:"city" validate:"omitempty,min=1,max=40"`
	State   *string `json:"state" validate:"omitempty,min=1,max=40"`
	Zip     *string `json:"zip" validate:"omitempty,min=5,max=10"`
	Country *string `json:"country" validate:"omitempty,min=1,max=40"`
}

// AddressService handles business logic for addresses
type AddressService struct {
	entityService[models.Address]
}

var _ AddressServiceInterface = (*AddressService)(nil)

// NewAddressService creates a new address service
func NewAddressService(repo repository.Repository[models.Address], validator *validator.Validate) *AddressService {
	return &AddressService{entityService[models.Address]{
		CrudService: NewCrudService(repo, "address"),
		validator:   validator,
		notFound:    apperrors.ErrAddressNotFound,
		sortable:    []string{"name", "city", "country", "created_at"},
	}}
}

// Create creates a new address
func (s *AddressService) Create(ctx context.Context, req *CreateAddressRequest) (*models.Address, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	address := &models.Address{}
	applyAddress(address, req)
	if err := s.Save(ctx, address); err != nil {
		return nil, err
	}
	return s.Get(ctx, address.ID)
}

// Replace overwrites every field of an existing address
func (s *AddressService) Replace(ctx context.Context, id uuid.UUID, req *CreateAddressRequest) (*models.Address, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	address, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAddress(address, req)
	if err := s.Save(ctx, address); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update changes the fields present in req
func (s *AddressService) Update(ctx context.Context, id uuid.UUID, req *UpdateAddressRequest) (*models.Address, error) {
	if err := ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}
	address, err := s.existing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch(&address.Name, req.Name)
	patch(&address.Street, req.Street)
	patch(&address.Street2, req.Street2)
	patch(&address.City, req.City)
	patch(&address.State, req.State)
	patch(&address.Zip, req.Zip)
	patch(&address.Country, req.Country)
	if err := s.Save(ctx, address); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func applyAddress(address *models.Address, req *CreateAddressRequest) {
	address.Name = req.Name
	address.Street = req.Street
	address.Street2 = req.Street2
	address.City = req.City
	address.State = req.State
	address.Zip = req.Zip
	address.Country = req.Country
}
