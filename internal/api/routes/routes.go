package routes

import (
	"net/http"

	"motorsport-backend/internal/api/handlers"
	"motorsport-backend/internal/api/middleware"
	"motorsport-backend/internal/api/registry"
	"motorsport-backend/internal/config"
	"motorsport-backend/internal/database/models"
	"motorsport-backend/internal/repository"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services groups the entity services built on one database.
// Validator is shared by the services and the route validators.
type Services struct {
	Validator *validator.Validate

	Addresses   *service.AddressService
	Classes     *service.ClassService
	Teams       *service.TeamService
	Drivers     *service.DriverService
	Cars        *service.CarService
	Races       *service.RaceService
	RaceResults *service.RaceResultService
}

// NewServices wires a gorm repository per entity into its service
func NewServices(db *gorm.DB) *Services {
	validator := service.NewValidator()

	// Initialize repositories
	addressRepo := repository.NewRepository[models.Address](db, "address")
	classRepo := repository.NewRepository[models.Class](db, "class")
	teamRepo := repository.NewRepository[models.Team](db, "team")
	driverRepo := repository.NewRepository[models.Driver](db, "driver")
	carRepo := repository.NewRepository[models.Car](db, "car")
	raceRepo := repository.NewRepository[models.Race](db, "race")
	raceResultRepo := repository.NewRepository[models.RaceResult](db, "race result")

	// Initialize services
	raceResults := service.NewRaceResultService(raceResultRepo, raceRepo, carRepo, driverRepo, classRepo, validator)
	return &Services{
		Validator:   validator,
		Addresses:   service.NewAddressService(addressRepo, validator),
		Classes:     service.NewClassService(classRepo, validator),
		Teams:       service.NewTeamService(teamRepo, addressRepo, driverRepo, validator),
		Drivers:     service.NewDriverService(driverRepo, addressRepo, teamRepo, validator),
		Cars:        service.NewCarService(carRepo, classRepo, teamRepo, validator),
		Races:       service.NewRaceService(raceRepo, classRepo, raceResults, validator),
		RaceResults: raceResults,
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	return NewRouter(db, cfg, NewServices(db))
}

// NewRouter mounts the middleware, operational endpoints and API controllers over services
func NewRouter(db *gorm.DB, cfg *config.Config, services *Services) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics())

	validator := services.Validator

	// Health, metrics and documentation live outside the API prefix
	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := registry.New(cfg.APIBasePath)
	api.Register(
		handlers.NewAddressHandler(services.Addresses, validator),
		handlers.NewClassHandler(services.Classes, validator),
		handlers.NewTeamHandler(services.Teams, validator),
		handlers.NewDriverHandler(services.Drivers, services.RaceResults, validator),
		handlers.NewCarHandler(services.Cars, services.RaceResults, validator),
		handlers.NewRaceHandler(services.Races, services.RaceResults, validator),
		handlers.NewRaceResultHandler(services.RaceResults, validator),
	)
	api.Mount(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "path": c.Request.URL.Path})
	})

	return router
}
