package handlers

import (
	"net/http"

	"motorsport-backend/internal/api/middleware"
	"motorsport-backend/internal/api/registry"
	"motorsport-backend/internal/database/models"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CarHandler handles HTTP requests for car operations
type CarHandler struct {
	resource[models.Car, service.CreateCarRequest, service.UpdateCarRequest]
	results   service.RaceResultServiceInterface
	validator *validator.Validate
}

// NewCarHandler creates a new car handler
func NewCarHandler(carService service.CarServiceInterface, results service.RaceResultServiceInterface, validator *validator.Validate) *CarHandler {
	return &CarHandler{
		resource:  resource[models.Car, service.CreateCarRequest, service.UpdateCarRequest]{svc: carService},
		results:   results,
		validator: validator,
	}
}

// Routes returns the car routes, including the results of a car
func (h *CarHandler) Routes() []registry.Route {
	routes := crudRoutes[service.CreateCarRequest, service.UpdateCarRequest](h.validator, "/cars", "cars", crud{
		List:    h.ListCars,
		Get:     h.GetCar,
		Create:  h.CreateCar,
		Replace: h.ReplaceCar,
		Update:  h.UpdateCar,
		Delete:  h.DeleteCar,
	})
	return append(routes, registry.Route{
		Method:  http.MethodGet,
		Path:    "/cars/:id/results",
		Handler: h.ListCarResults,
		Summary: "List a car's results",
		Tags:    []string{"cars", "race-results"},
		Validators: []gin.HandlerFunc{
			middleware.UUIDParams("id"),
			middleware.ValidateQuery[service.ResultQuery](h.validator),
		},
	})
}

// ListCars handles GET /cars
// @Summary List cars
// @Description Get one page of cars with the total count
// @Tags cars
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.Car] "Successfully retrieved cars"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	h.list(c)
}

// GetCar handles GET /cars/:id
// @Summary Get car by ID
// @Description Get a specific car by its UUID, with its related entities
// @Tags cars
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Success 200 {object} models.Car "Successfully retrieved car"
// @Failure 400 {object} map[string]interface{} "Invalid car ID"
// @Failure 404 {object} map[string]interface{} "Car not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	h.get(c)
}

// CreateCar handles POST /cars
// @Summary Create a new car
// @Description Create a car with the provided details
// @Tags cars
// @Accept json
// @Produce json
// @Param car body service.CreateCarRequest true "Car data"
// @Success 201 {object} models.Car "Successfully created car"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Car already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	h.create(c)
}

// ReplaceCar handles PUT /cars/:id
// @Summary Replace car
// @Description Overwrite every field of an existing car
// @Tags cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param car body service.CreateCarRequest true "Car data"
// @Success 200 {object} models.Car "Successfully replaced car"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Car not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars/{id} [put]
func (h *CarHandler) ReplaceCar(c *gin.Context) {
	h.replace(c)
}

// UpdateCar handles PATCH /cars/:id
// @Summary Update car
// @Description Update the fields present in the body
// @Tags cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param car body service.UpdateCarRequest true "Fields to update"
// @Success 200 {object} models.Car "Successfully updated car"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Car not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars/{id} [patch]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	h.update(c)
}

// DeleteCar handles DELETE /cars/:id
// @Summary Delete car
// @Description Delete a car by its UUID
// @Tags cars
// @Param id path string true "Car ID (UUID)"
// @Success 204 "Car deleted"
// @Failure 400 {object} map[string]interface{} "Invalid car ID"
// @Failure 404 {object} map[string]interface{} "Car not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	h.delete(c)
}

// ListCarResults handles GET /cars/:id/results
// @Summary List a car's results
// @Description Get one page of race results for the car, optionally narrowed further
// @Tags cars,race-results
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param race_id query string false "Filter by race ID (UUID)"
// @Param driver_id query string false "Filter by driver ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.RaceResult] "Successfully retrieved results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Car not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /cars/{id}/results [get]
func (h *CarHandler) ListCarResults(c *gin.Context) {
	id := middleware.Param(c, "id")
	res, err := h.results.ListBy(c.Request.Context(), service.ResultFilter{CarID: &id}, middleware.Query[service.ResultQuery](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
