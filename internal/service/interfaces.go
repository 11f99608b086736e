package service

import (
	"context"

	"motorsport-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EntityService is the REST-facing contract shared by every entity.
// C is the create/replace payload and U the partial update payload.
type EntityService[T, C, U any] interface {
	List(ctx context.Context, q ListQuery) (*ListResult[T], error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, req *C) (*T, error)
	Replace(ctx context.Context, id uuid.UUID, req *C) (*T, error)
	Update(ctx context.Context, id uuid.UUID, req *U) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressServiceInterface defines the interface for address service
type AddressServiceInterface interface {
	EntityService[models.Address, CreateAddressRequest, UpdateAddressRequest]
}

// ClassServiceInterface defines the interface for class service
type ClassServiceInterface interface {
	EntityService[models.Class, CreateClassRequest, UpdateClassRequest]
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	EntityService[models.Team, CreateTeamRequest, UpdateTeamRequest]
}

// DriverServiceInterface defines the interface for driver service
type DriverServiceInterface interface {
	EntityService[models.Driver, CreateDriverRequest, UpdateDriverRequest]
}

// CarServiceInterface defines the interface for car service
type CarServiceInterface interface {
	EntityService[models.Car, CreateCarRequest, UpdateCarRequest]
}

// RaceServiceInterface defines the interface for race service
type RaceServiceInterface interface {
	EntityService[models.Race, CreateRaceRequest, UpdateRaceRequest]
}

// RaceResultServiceInterface defines the interface for race result service
type RaceResultServiceInterface interface {
	EntityService[models.RaceResult, CreateRaceResultRequest, UpdateRaceResultRequest]
	// ListBy lists results for the entity in filter; the anchor must exist
	ListBy(ctx context.Context, filter ResultFilter, q ResultQuery) (*ListResult[models.RaceResult], error)
	AddToRace(ctx context.Context, raceID uuid.UUID, inputs []RaceResultInput) ([]models.RaceResult, error)
	UpdateInRace(ctx context.Context, raceID, resultID uuid.UUID, req *UpdateRaceResultRequest) (*models.RaceResult, error)
}
