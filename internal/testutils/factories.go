package testutils

import (
	"fmt"
	"sync/atomic"

	"motorsport-backend/internal/database/models"

	"github.com/google/uuid"
)

var seq atomic.Int64

func next() int64 {
	return seq.Add(1)
}

// AddressFactory provides methods to create test Address data
type AddressFactory struct{}

// Create creates a test Address with default values
func (f *AddressFactory) Create() *models.Address {
	return &models.Address{
		Name:    fmt.Sprintf("Workshop %d", next()),
		Street:  "12 Nguyen Hue",
		City:    "Ho Chi Minh City",
		State:   "HCM",
		Zip:     "700000",
		Country: "Viet Nam",
	}
}

// ClassFactory provides methods to create test Class data
type ClassFactory struct{}

// Create creates a test Class with default values
func (f *ClassFactory) Create() *models.Class {
	return &models.Class{Name: fmt.Sprintf("GT%d", next())}
}

// WithName creates a Class with a custom name
func (f *ClassFactory) WithName(name string) *models.Class {
	c := f.Create()
	c.Name = name
	return c
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name:        fmt.Sprintf("Saigon Racing %d", next()),
		Nationality: models.NationalityVietNam,
	}
}

// WithBusinessAddress creates a Team pointing at an address
func (f *TeamFactory) WithBusinessAddress(addressID uuid.UUID) *models.Team {
	t := f.Create()
	t.BusinessAddressID = &addressID
	return t
}

// DriverFactory provides methods to create test Driver data
type DriverFactory struct{}

// Create creates a test Driver with default values
func (f *DriverFactory) Create() *models.Driver {
	return &models.Driver{
		FirstName:   fmt.Sprintf("Minh %d", next()),
		LastName:    "Nguyen",
		Nationality: models.NationalityVietNam,
	}
}

// WithName creates a Driver with a custom name
func (f *DriverFactory) WithName(first, last string) *models.Driver {
	d := f.Create()
	d.FirstName = first
	d.LastName = last
	return d
}

// CarFactory provides methods to create test Car data
type CarFactory struct{}

// Create creates a test Car with default values
func (f *CarFactory) Create() *models.Car {
	return &models.Car{Make: "Porsche", Model: fmt.Sprintf("911 GT3 R #%d", next())}
}

// WithTeam creates a Car owned by a team
func (f *CarFactory) WithTeam(teamID uuid.UUID) *models.Car {
	c := f.Create()
	c.TeamID = &teamID
	return c
}

// RaceFactory provides methods to create test Race data
type RaceFactory struct{}

// Create creates a test Race with default values
func (f *RaceFactory) Create() *models.Race {
	return &models.Race{Name: fmt.Sprintf("Hanoi Grand Prix %d", next())}
}

// RaceResultFactory provides methods to create test RaceResult data
type RaceResultFactory struct{}

// Create creates a test RaceResult with default values
func (f *RaceResultFactory) Create() *models.RaceResult {
	return &models.RaceResult{
		CarNumber:         int(next()%99) + 1,
		StartingPosition:  1,
		FinishingPosition: 1,
		IsFinished:        true,
	}
}

// WithPositions creates a finished RaceResult with the given grid and finishing positions
func (f *RaceResultFactory) WithPositions(start, finish int) *models.RaceResult {
	r := f.Create()
	r.StartingPosition = start
	r.FinishingPosition = finish
	return r
}

// ForEntry creates a RaceResult for the given car, race and driver
func (f *RaceResultFactory) ForEntry(carID, raceID, driverID uuid.UUID) *models.RaceResult {
	r := f.Create()
	r.CarID = &carID
	r.RaceID = &raceID
	r.DriverID = &driverID
	return r
}

// FactorySet bundles every factory
type FactorySet struct {
	Address    *AddressFactory
	Class      *ClassFactory
	Team       *TeamFactory
	Driver     *DriverFactory
	Car        *CarFactory
	Race       *RaceFactory
	RaceResult *RaceResultFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Address:    &AddressFactory{},
		Class:      &ClassFactory{},
		Team:       &TeamFactory{},
		Driver:     &DriverFactory{},
		Car:        &CarFactory{},
		Race:       &RaceFactory{},
		RaceResult: &RaceResultFactory{},
	}
}
