package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"motorsport-backend/internal/api/routes"
	"motorsport-backend/internal/config"
	"motorsport-backend/internal/database"
	"motorsport-backend/internal/database/models"
	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/logger"
	"motorsport-backend/internal/repository"
	"motorsport-backend/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Seed records reference each other by name, never by id
type AddressData struct {
	Name    string `yaml:"name"`
	Street  string `yaml:"street"`
	Street2 string `yaml:"street2,omitempty"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	Zip     string `yaml:"zip"`
	Country string `yaml:"country"`
}

type ClassData struct {
	Name string `yaml:"name"`
}

type TeamData struct {
	Name            string `yaml:"name"`
	Nationality     string `yaml:"nationality,omitempty"`
	BusinessAddress string `yaml:"business_address,omitempty"`
}

type DriverData struct {
	FirstName         string   `yaml:"first_name"`
	LastName          string   `yaml:"last_name"`
	Nationality       string   `yaml:"nationality,omitempty"`
	HomeAddress       string   `yaml:"home_address,omitempty"`
	ManagementAddress string   `yaml:"management_address,omitempty"`
	Teams             []string `yaml:"teams,omitempty"`
}

// CarData.Key names the car inside the seed files only
type CarData struct {
	Key   string `yaml:"key"`
	Make  string `yaml:"make"`
	Model string `yaml:"model"`
	Class string `yaml:"class,omitempty"`
	Team  string `yaml:"team,omitempty"`
}

type ResultData struct {
	Car               string `yaml:"car"`
	Driver            string `yaml:"driver"`
	Class             string `yaml:"class,omitempty"`
	CarNumber         int    `yaml:"car_number"`
	StartingPosition  int    `yaml:"starting_position"`
	FinishingPosition int    `yaml:"finishing_position"`
	IsFinished        bool   `yaml:"is_finished"`
}

type RaceData struct {
	Name    string       `yaml:"name"`
	Classes []string     `yaml:"classes,omitempty"`
	Results []ResultData `yaml:"results,omitempty"`
}

// File structures
type SeedFile struct {
	Addresses []AddressData `yaml:"addresses"`
	Classes   []ClassData   `yaml:"classes"`
	Teams     []TeamData    `yaml:"teams"`
	Drivers   []DriverData  `yaml:"drivers"`
	Cars      []CarData     `yaml:"cars"`
	Races     []RaceData    `yaml:"races"`
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)
	log := logger.New()

	log.WithField("dir", cfg.SeedDataDir).Info("Loading initial data from YAML files")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	data, err := readSeedFiles(cfg.SeedDataDir)
	if err != nil {
		log.WithError(err).Fatal("Failed to read seed files")
	}

	if err := newSeeder(db).run(context.Background(), data); err != nil {
		log.WithError(err).Fatal("Failed to load initial data")
	}

	log.Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    gormlogger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// readSeedFiles merges every *.yaml file under dataDir, in lexical order
func readSeedFiles(dataDir string) (*SeedFile, error) {
	var all SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Addresses = append(all.Addresses, file.Addresses...)
		all.Classes = append(all.Classes, file.Classes...)
		all.Teams = append(all.Teams, file.Teams...)
		all.Drivers = append(all.Drivers, file.Drivers...)
		all.Cars = append(all.Cars, file.Cars...)
		all.Races = append(all.Races, file.Races...)
		return nil
	})

	return &all, err
}

type seeder struct {
	svc *routes.Services

	addressRepo repository.Repository[models.Address]
	classRepo   repository.Repository[models.Class]
	teamRepo    repository.Repository[models.Team]
	driverRepo  repository.Repository[models.Driver]
	carRepo     repository.Repository[models.Car]
	raceRepo    repository.Repository[models.Race]
	resultRepo  repository.Repository[models.RaceResult]

	addresses map[string]uuid.UUID
	classes   map[string]uuid.UUID
	teams     map[string]uuid.UUID
	drivers   map[string]uuid.UUID
	cars      map[string]uuid.UUID
}

func newSeeder(db *gorm.DB) *seeder {
	return &seeder{
		svc:         routes.NewServices(db),
		addressRepo: repository.NewRepository[models.Address](db, "address"),
		classRepo:   repository.NewRepository[models.Class](db, "class"),
		teamRepo:    repository.NewRepository[models.Team](db, "team"),
		driverRepo:  repository.NewRepository[models.Driver](db, "driver"),
		carRepo:     repository.NewRepository[models.Car](db, "car"),
		raceRepo:    repository.NewRepository[models.Race](db, "race"),
		resultRepo:  repository.NewRepository[models.RaceResult](db, "race result"),
		addresses:   make(map[string]uuid.UUID),
		classes:     make(map[string]uuid.UUID),
		teams:       make(map[string]uuid.UUID),
		drivers:     make(map[string]uuid.UUID),
		cars:        make(map[string]uuid.UUID),
	}
}

func (s *seeder) run(ctx context.Context, data *SeedFile) error {
	steps := []struct {
		name  string
		total int
		fn    func(context.Context, *SeedFile) (int, error)
	}{
		{"addresses", len(data.Addresses), s.seedAddresses},
		{"classes", len(data.Classes), s.seedClasses},
		{"teams", len(data.Teams), s.seedTeams},
		{"drivers", len(data.Drivers), s.seedDrivers},
		{"cars", len(data.Cars), s.seedCars},
		{"races", len(data.Races), s.seedRaces},
	}

	for _, step := range steps {
		created, err := step.fn(ctx, data)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
		logrus.WithFields(logrus.Fields{
			"created": created,
			"total":   step.total,
		}).Infof("Seeded %s", step.name)
	}
	return nil
}

// existing returns the id of the row matching where, or uuid.Nil when there is none
func existing[T any](ctx context.Context, repo repository.Repository[T], where map[string]interface{}, id func(*T) uuid.UUID) (uuid.UUID, error) {
	row, err := repo.FindOne(ctx, where)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return id(row), nil
}

func (s *seeder) seedAddresses(ctx context.Context, data *SeedFile) (int, error) {
	created := 0
	for _, a := range data.Addresses {
		id, err := existing(ctx, s.addressRepo, map[string]interface{}{"name": a.Name}, func(m *models.Address) uuid.UUID { return m.ID })
		if err != nil {
			return created, err
		}
		if id == uuid.Nil {
			address, err := s.svc.Addresses.Create(ctx, &service.CreateAddressRequest{
				Name:    a.Name,
				Street:  a.Street,
				Street2: a.Street2,
				City:    a.City,
				State:   a.State,
				Zip:     a.Zip,
				Country: a.Country,
			})
			if err != nil {
				return created, fmt.Errorf("address %s: %w", a.Name, err)
			}
			id = address.ID
			created++
		}
		s.addresses[a.Name] = id
	}
	return created, nil
}

func (s *seeder) seedClasses(ctx context.Context, data *SeedFile) (int, error) {
	created := 0
	for _, c := range data.Classes {
		id, err := existing(ctx, s.classRepo, map[string]interface{}{"name": c.Name}, func(m *models.Class) uuid.UUID { return m.ID })
		if err != nil {
			return created, err
		}
		if id == uuid.Nil {
			class, err := s.svc.Classes.Create(ctx, &service.CreateClassRequest{Name: c.Name})
			if err != nil {
				return created, fmt.Errorf("class %s: %w", c.Name, err)
			}
			id = class.ID
			created++
		}
		s.classes[c.Name] = id
	}
	return created, nil
}

func (s *seeder) seedTeams(ctx context.Context, data *SeedFile) (int, error) {
	created := 0
	for _, t := range data.Teams {
		id, err := existing(ctx, s.teamRepo, map[string]interface{}{"name": t.Name}, func(m *models.Team) uuid.UUID { return m.ID })
		if err != nil {
			return created, err
		}
		if id == uuid.Nil {
			address, err := lookup(s.addresses, "address", t.BusinessAddress)
			if err != nil {
				return created, fmt.Errorf("team %s: %w", t.Name, err)
			}
			team, err := s.svc.Teams.Create(ctx, &service.CreateTeamRequest{
				Name:              t.Name,
				Nationality:       models.Nationality(t.Nationality),
				BusinessAddressID: address,
			})
			if err != nil {
				return created, fmt.Errorf("team %s: %w", t.Name, err)
			}
			id = team.ID
			created++
		}
		s.teams[t.Name] = id
	}
	return created, nil
}

func (s *seeder) seedDrivers(ctx context.Context, data *SeedFile) (int, error) {
	created := 0
	for _, d := range data.Drivers {
		name := fullName(d.FirstName, d.LastName)
		where := map[string]interface{}{"first_name": d.FirstName, "last_name": d.LastName}
		id, err := existing(ctx, s.driverRepo, where, func(m *models.Driver) uuid.UUID { return m.ID })
		if err != nil {
			return created, err
		}
		if id == uuid.Nil {
			home, err := lookup(s.addresses, "address", d.HomeAddress)
			if err != nil {
				return created, fmt.Errorf("driver %s: %w", name, err)
			}
			management, err := lookup(s.addresses, "address", d.ManagementAddress)
			if err != nil {
				return created, fmt.Errorf("driver %s: %w", name, err)
			}
			teamIDs, err := lookupAll(s.teams, "team", d.Teams)
			if err != nil {
				return created, fmt.Errorf("driver %s: %w", name, err)
			}

			driver, err := s.svc.Drivers.Create(ctx, &service.CreateDriverRequest{
				FirstName:           d.FirstName,
				LastName:            d.LastName,
				Nationality:         models.Nationality(d.Nationality),
				HomeAddressID:       home,
				ManagementAddressID: management,
				TeamIDs:             teamIDs,
			})
			if err != nil {
				return created, fmt.Errorf("driver %s: %w", name, err)
			}
			id = driver.ID
			created++
		}
		s.drivers[name] = id
	}
	return created, nil
}

func (s *seeder) seedCars(ctx context.Context, data *SeedFile) (int, error) {
	created := 0
	for _, c := range data.Cars {
		if c.Key == "" {
			return created, fmt.Errorf("car %s %s: key is required", c.Make, c.Model)
		}
		class, err := lookup(s.classes, "class", c.Class)
		if err != nil {
			return created, fmt.Errorf("car %s: %w", c.Key, err)
		}
		team, err := lookup(s.teams, "team", c.Team)
		if err != nil {
			return created, fmt.Errorf("car %s: %w", c.Key, err)
		}

		where := map[string]interface{}{"make": c.Make, "model": c.Model, "team_id": team}
		id, err := existing(ctx, s.carRepo, where, func(m *models.Car) uuid.UUID { return m.ID })
		if err != nil {
			return created, err
		}
		if id == uuid.Nil {
			car, err := s.svc.Cars.Create(ctx, &service.CreateCarRequest{
				Make:    c.Make,
				Model:   c.Model,
				ClassID: class,
				TeamID:  team,
			})
			if err != nil {
				return created, fmt.Errorf("car %s: %w", c.Key, err)
			}
			id = car.ID
			created++
		}
		s.cars[c.Key] = id
	}
	return created, nil
}

// seedRaces creates missing races, then adds whichever of their results are not stored yet
func (s *seeder) seedRaces(ctx context.Context, data *SeedFile) (int, error) {
	created := 0
	for _, r := range data.Races {
		raceID, err := existing(ctx, s.raceRepo, map[string]interface{}{"name": r.Name}, func(m *models.Race) uuid.UUID { return m.ID })
		if err != nil {
			return created, err
		}
		if raceID == uuid.Nil {
			classIDs, err := lookupAll(s.classes, "class", r.Classes)
			if err != nil {
				return created, fmt.Errorf("race %s: %w", r.Name, err)
			}
			race, err := s.svc.Races.Create(ctx, &service.CreateRaceRequest{Name: r.Name, ClassIDs: classIDs})
			if err != nil {
				return created, fmt.Errorf("race %s: %w", r.Name, err)
			}
			raceID = race.ID
			created++
		}

		inputs, err := s.missingResults(ctx, raceID, r.Results)
		if err != nil {
			return created, fmt.Errorf("race %s: %w", r.Name, err)
		}
		if len(inputs) == 0 {
			continue
		}
		if _, err := s.svc.RaceResults.AddToRace(ctx, raceID, inputs); err != nil {
			return created, fmt.Errorf("race %s: %w", r.Name, err)
		}
		logrus.WithFields(logrus.Fields{
			"race":    r.Name,
			"results": len(inputs),
		}).Info("Added race results")
	}
	return created, nil
}

func (s *seeder) missingResults(ctx context.Context, raceID uuid.UUID, results []ResultData) ([]service.RaceResultInput, error) {
	var inputs []service.RaceResultInput
	for _, res := range results {
		car, err := lookup(s.cars, "car", res.Car)
		if err != nil {
			return nil, err
		}
		driver, err := lookup(s.drivers, "driver", res.Driver)
		if err != nil {
			return nil, err
		}
		class, err := lookup(s.classes, "class", res.Class)
		if err != nil {
			return nil, err
		}
		if car == nil || driver == nil {
			return nil, errors.New("results need both car and driver")
		}

		where := map[string]interface{}{"race_id": raceID, "car_id": *car, "driver_id": *driver}
		id, err := existing(ctx, s.resultRepo, where, func(m *models.RaceResult) uuid.UUID { return m.ID })
		if err != nil {
			return nil, err
		}
		if id != uuid.Nil {
			continue
		}

		inputs = append(inputs, service.RaceResultInput{
			CarNumber:         res.CarNumber,
			StartingPosition:  res.StartingPosition,
			FinishingPosition: res.FinishingPosition,
			IsFinished:        res.IsFinished,
			CarID:             car,
			DriverID:          driver,
			ClassID:           class,
		})
	}
	return inputs, nil
}

// lookup resolves an optional seed name; an empty name yields nil
func lookup(ids map[string]uuid.UUID, kind, name string) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}
	id, ok := ids[name]
	if !ok {
		return nil, fmt.Errorf("%s %q is not defined in the seed data", kind, name)
	}
	return &id, nil
}

func lookupAll(ids map[string]uuid.UUID, kind string, names []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		id, err := lookup(ids, kind, name)
		if err != nil {
			return nil, err
		}
		if id != nil {
			out = append(out, *id)
		}
	}
	return out, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
