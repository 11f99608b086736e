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

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	resource[models.Driver, service.CreateDriverRequest, service.UpdateDriverRequest]
	results   service.RaceResultServiceInterface
	validator *validator.Validate
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService service.DriverServiceInterface, results service.RaceResultServiceInterface, validator *validator.Validate) *DriverHandler {
	return &DriverHandler{
		resource:  resource[models.Driver, service.CreateDriverRequest, service.UpdateDriverRequest]{svc: driverService},
		results:   results,
		validator: validator,
	}
}

// Routes returns the driver routes, including the results of a driver
func (h *DriverHandler) Routes() []registry.Route {
	routes := crudRoutes[service.CreateDriverRequest, service.UpdateDriverRequest](h.validator, "/drivers", "drivers", crud{
		List:    h.ListDrivers,
		Get:     h.GetDriver,
		Create:  h.CreateDriver,
		Replace: h.ReplaceDriver,
		Update:  h.UpdateDriver,
		Delete:  h.DeleteDriver,
	})
	return append(routes, registry.Route{
		Method:  http.MethodGet,
		Path:    "/drivers/:id/results",
		Handler: h.ListDriverResults,
		Summary: "List a driver's results",
		Tags:    []string{"drivers", "race-results"},
		Validators: []gin.HandlerFunc{
			middleware.UUIDParams("id"),
			middleware.ValidateQuery[service.ResultQuery](h.validator),
		},
	})
}

// ListDrivers handles GET /drivers
// @Summary List drivers
// @Description Get one page of drivers with the total count
// @Tags drivers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.Driver] "Successfully retrieved drivers"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers [get]
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	h.list(c)
}

// GetDriver handles GET /drivers/:id
// @Summary Get driver by ID
// @Description Get a specific driver by its UUID, with its related entities
// @Tags drivers
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Success 200 {object} models.Driver "Successfully retrieved driver"
// @Failure 400 {object} map[string]interface{} "Invalid driver ID"
// @Failure 404 {object} map[string]interface{} "Driver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	h.get(c)
}

// CreateDriver handles POST /drivers
// @Summary Create a new driver
// @Description Create a driver. team_ids that do not exist are ignored; address ids must exist.
// @Tags drivers
// @Accept json
// @Produce json
// @Param driver body service.CreateDriverRequest true "Driver data"
// @Success 201 {object} models.Driver "Successfully created driver"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Driver already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers [post]
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	h.create(c)
}

// ReplaceDriver handles PUT /drivers/:id
// @Summary Replace driver
// @Description Overwrite every field of an existing driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Param driver body service.CreateDriverRequest true "Driver data"
// @Success 200 {object} models.Driver "Successfully replaced driver"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Driver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers/{id} [put]
func (h *DriverHandler) ReplaceDriver(c *gin.Context) {
	h.replace(c)
}

// UpdateDriver handles PATCH /drivers/:id
// @Summary Update driver
// @Description Update the fields present in the body
// @Tags drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Param driver body service.UpdateDriverRequest true "Fields to update"
// @Success 200 {object} models.Driver "Successfully updated driver"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Driver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers/{id} [patch]
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	h.update(c)
}

// DeleteDriver handles DELETE /drivers/:id
// @Summary Delete driver
// @Description Delete a driver by its UUID
// @Tags drivers
// @Param id path string true "Driver ID (UUID)"
// @Success 204 "Driver deleted"
// @Failure 400 {object} map[string]interface{} "Invalid driver ID"
// @Failure 404 {object} map[string]interface{} "Driver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers/{id} [delete]
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	h.delete(c)
}

// ListDriverResults handles GET /drivers/:id/results
// @Summary List a driver's results
// @Description Get one page of race results for the driver, optionally narrowed further
// @Tags drivers,race-results
// @Produce json
// @Param id path string true "Driver ID (UUID)"
// @Param race_id query string false "Filter by race ID (UUID)"
// @Param car_id query string false "Filter by car ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.RaceResult] "Successfully retrieved results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Driver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /drivers/{id}/results [get]
func (h *DriverHandler) ListDriverResults(c *gin.Context) {
	id := middleware.Param(c, "id")
	res, err := h.results.ListBy(c.Request.Context(), service.ResultFilter{DriverID: &id}, middleware.Query[service.ResultQuery](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
