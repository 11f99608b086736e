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

// RaceResultHandler handles HTTP requests for standalone race result operations
type RaceResultHandler struct {
	resource[models.RaceResult, service.CreateRaceResultRequest, service.UpdateRaceResultRequest]
	results   service.RaceResultServiceInterface
	validator *validator.Validate
}

// NewRaceResultHandler creates a new race result handler
func NewRaceResultHandler(results service.RaceResultServiceInterface, validator *validator.Validate) *RaceResultHandler {
	return &RaceResultHandler{
		resource:  resource[models.RaceResult, service.CreateRaceResultRequest, service.UpdateRaceResultRequest]{svc: results},
		results:   results,
		validator: validator,
	}
}

// Routes returns the race result routes; the listing accepts race, car and driver filters
func (h *RaceResultHandler) Routes() []registry.Route {
	routes := crudRoutes[service.CreateRaceResultRequest, service.UpdateRaceResultRequest](h.validator, "/race-results", "race-results", crud{
		List:    h.ListRaceResults,
		Get:     h.GetRaceResult,
		Create:  h.CreateRaceResult,
		Replace: h.ReplaceRaceResult,
		Update:  h.UpdateRaceResult,
		Delete:  h.DeleteRaceResult,
	})
	routes[0].Validators = []gin.HandlerFunc{middleware.ValidateQuery[service.ResultQuery](h.validator)}
	return routes
}

// ListRaceResults handles GET /race-results
// @Summary List race results
// @Description Get one page of race results with the total count
// @Tags race-results
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Param race_id query string false "Filter by race ID (UUID)"
// @Param car_id query string false "Filter by car ID (UUID)"
// @Param driver_id query string false "Filter by driver ID (UUID)"
// @Success 200 {object} service.ListResult[models.RaceResult] "Successfully retrieved race results"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /race-results [get]
func (h *RaceResultHandler) ListRaceResults(c *gin.Context) {
	res, err := h.results.ListBy(c.Request.Context(), service.ResultFilter{}, middleware.Query[service.ResultQuery](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetRaceResult handles GET /race-results/:id
// @Summary Get race result by ID
// @Description Get a specific race result by its UUID, with its related entities
// @Tags race-results
// @Produce json
// @Param id path string true "Race result ID (UUID)"
// @Success 200 {object} models.RaceResult "Successfully retrieved race result"
// @Failure 400 {object} map[string]interface{} "Invalid race result ID"
// @Failure 404 {object} map[string]interface{} "Race result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /race-results/{id} [get]
func (h *RaceResultHandler) GetRaceResult(c *gin.Context) {
	h.get(c)
}

// CreateRaceResult handles POST /race-results
// @Summary Create a new race result
// @Description Create a race result with the provided details
// @Tags race-results
// @Accept json
// @Produce json
// @Param raceResult body service.CreateRaceResultRequest true "Race result data"
// @Success 201 {object} models.RaceResult "Successfully created race result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Race result already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /race-results [post]
func (h *RaceResultHandler) CreateRaceResult(c *gin.Context) {
	h.create(c)
}

// ReplaceRaceResult handles PUT /race-results/:id
// @Summary Replace race result
// @Description Overwrite every field of an existing race result
// @Tags race-results
// @Accept json
// @Produce json
// @Param id path string true "Race result ID (UUID)"
// @Param raceResult body service.CreateRaceResultRequest true "Race result data"
// @Success 200 {object} models.RaceResult "Successfully replaced race result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /race-results/{id} [put]
func (h *RaceResultHandler) ReplaceRaceResult(c *gin.Context) {
	h.replace(c)
}

// UpdateRaceResult handles PATCH /race-results/:id
// @Summary Update race result
// @Description Update the fields present in the body
// @Tags race-results
// @Accept json
// @Produce json
// @Param id path string true "Race result ID (UUID)"
// @Param raceResult body service.UpdateRaceResultRequest true "Fields to update"
// @Success 200 {object} models.RaceResult "Successfully updated race result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /race-results/{id} [patch]
func (h *RaceResultHandler) UpdateRaceResult(c *gin.Context) {
	h.update(c)
}

// DeleteRaceResult handles DELETE /race-results/:id
// @Summary Delete race result
// @Description Delete a race result by its UUID
// @Tags race-results
// @Param id path string true "Race result ID (UUID)"
// @Success 204 "Race result deleted"
// @Failure 400 {object} map[string]interface{} "Invalid race result ID"
// @Failure 404 {object} map[string]interface{} "Race result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /race-results/{id} [delete]
func (h *RaceResultHandler) DeleteRaceResult(c *gin.Context) {
	h.delete(c)
}
