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

// RaceHandler handles HTTP requests for race operations and the results of a race
type RaceHandler struct {
	resource[models.Race, service.CreateRaceRequest, service.UpdateRaceRequest]
	results   service.RaceResultServiceInterface
	validator *validator.Validate
}

// NewRaceHandler creates a new race handler
func NewRaceHandler(raceService service.RaceServiceInterface, results service.RaceResultServiceInterface, validator *validator.Validate) *RaceHandler {
	return &RaceHandler{
		resource:  resource[models.Race, service.CreateRaceRequest, service.UpdateRaceRequest]{svc: raceService},
		results:   results,
		validator: validator,
	}
}

// Routes returns the race routes, including result traversal and updates
func (h *RaceHandler) Routes() []registry.Route {
	routes := crudRoutes[service.CreateRaceRequest, service.UpdateRaceRequest](h.validator, "/races", "races", crud{
		List:    h.ListRaces,
		Get:     h.GetRace,
		Create:  h.CreateRace,
		Replace: h.ReplaceRace,
		Update:  h.UpdateRace,
		Delete:  h.DeleteRace,
	})

	tags := []string{"races", "race-results"}
	return append(routes,
		registry.Route{
			Method:  http.MethodGet,
			Path:    "/races/:id/results",
			Handler: h.ListRaceResults,
			Summary: "Get a race's results",
			Tags:    tags,
			Validators: []gin.HandlerFunc{
				middleware.UUIDParams("id"),
				middleware.ValidateQuery[service.ResultQuery](h.validator),
			},
		},
		registry.Route{
			Method:  http.MethodPut,
			Path:    "/races/:id/results",
			Handler: h.AddRaceResults,
			Summary: "Add new race results for an existing race",
			Tags:    tags,
			Validators: []gin.HandlerFunc{
				middleware.UUIDParams("id"),
				middleware.ValidateJSON[service.AddRaceResultsRequest](h.validator),
			},
		},
		registry.Route{
			Method:  http.MethodPatch,
			Path:    "/races/:id/results/:resultId",
			Handler: h.UpdateRaceResult,
			Summary: "Update an existing race result",
			Tags:    tags,
			Validators: []gin.HandlerFunc{
				middleware.UUIDParams("id", "resultId"),
				middleware.ValidateJSON[service.UpdateRaceResultRequest](h.validator),
			},
		},
	)
}

// ListRaces handles GET /races
// @Summary List races
// @Description Get one page of races with the total count
// @Tags races
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.Race] "Successfully retrieved races"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races [get]
func (h *RaceHandler) ListRaces(c *gin.Context) {
	h.list(c)
}

// GetRace handles GET /races/:id
// @Summary Get race by ID
// @Description Get a specific race by its UUID, with its related entities
// @Tags races
// @Produce json
// @Param id path string true "Race ID (UUID)"
// @Success 200 {object} models.Race "Successfully retrieved race"
// @Failure 400 {object} map[string]interface{} "Invalid race ID"
// @Failure 404 {object} map[string]interface{} "Race not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id} [get]
func (h *RaceHandler) GetRace(c *gin.Context) {
	h.get(c)
}

// CreateRace handles POST /races
// @Summary Create a new race
// @Description Create a race with its classes and, optionally, its initial results. class_ids that do not exist are ignored.
// @Tags races
// @Accept json
// @Produce json
// @Param race body service.CreateRaceRequest true "Race data"
// @Success 201 {object} models.Race "Successfully created race"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Race already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races [post]
func (h *RaceHandler) CreateRace(c *gin.Context) {
	h.create(c)
}

// ReplaceRace handles PUT /races/:id
// @Summary Replace race
// @Description Overwrite every field of an existing race
// @Tags races
// @Accept json
// @Produce json
// @Param id path string true "Race ID (UUID)"
// @Param race body service.CreateRaceRequest true "Race data"
// @Success 200 {object} models.Race "Successfully replaced race"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id} [put]
func (h *RaceHandler) ReplaceRace(c *gin.Context) {
	h.replace(c)
}

// UpdateRace handles PATCH /races/:id
// @Summary Update race
// @Description Update the fields present in the body
// @Tags races
// @Accept json
// @Produce json
// @Param id path string true "Race ID (UUID)"
// @Param race body service.UpdateRaceRequest true "Fields to update"
// @Success 200 {object} models.Race "Successfully updated race"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id} [patch]
func (h *RaceHandler) UpdateRace(c *gin.Context) {
	h.update(c)
}

// DeleteRace handles DELETE /races/:id
// @Summary Delete race
// @Description Delete a race by its UUID
// @Tags races
// @Param id path string true "Race ID (UUID)"
// @Success 204 "Race deleted"
// @Failure 400 {object} map[string]interface{} "Invalid race ID"
// @Failure 404 {object} map[string]interface{} "Race not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id} [delete]
func (h *RaceHandler) DeleteRace(c *gin.Context) {
	h.delete(c)
}

// ListRaceResults handles GET /races/:id/results
// @Summary Get a race's results
// @Description Get one page of the race's results, optionally narrowed by car or driver
// @Tags races,race-results
// @Produce json
// @Param id path string true "Race ID (UUID)"
// @Param car_id query string false "Filter by car ID (UUID)"
// @Param driver_id query string false "Filter by driver ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.RaceResult] "Successfully retrieved results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id}/results [get]
func (h *RaceHandler) ListRaceResults(c *gin.Context) {
	id := middleware.Param(c, "id")
	res, err := h.results.ListBy(c.Request.Context(), service.ResultFilter{RaceID: &id}, middleware.Query[service.ResultQuery](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// AddRaceResults handles PUT /races/:id/results
// @Summary Add new race results for an existing race
// @Description Create every result in the body for the race, all or none
// @Tags races,race-results
// @Accept json
// @Produce json
// @Param id path string true "Race ID (UUID)"
// @Param results body service.AddRaceResultsRequest true "Results to add"
// @Success 200 {array} models.RaceResult "Created results"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race not found"
// @Failure 409 {object} map[string]interface{} "Result already exists for this entry"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id}/results [put]
func (h *RaceHandler) AddRaceResults(c *gin.Context) {
	req := middleware.Body[service.AddRaceResultsRequest](c)
	results, err := h.results.AddToRace(c.Request.Context(), middleware.Param(c, "id"), req.Results)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// UpdateRaceResult handles PATCH /races/:id/results/:resultId
// @Summary Update an existing race result
// @Description Update a result that belongs to the race
// @Tags races,race-results
// @Accept json
// @Produce json
// @Param id path string true "Race ID (UUID)"
// @Param resultId path string true "Race result ID (UUID)"
// @Param raceResult body service.UpdateRaceResultRequest true "Fields to update"
// @Success 200 {object} models.RaceResult "Successfully updated result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Race result not found in this race"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /races/{id}/results/{resultId} [patch]
func (h *RaceHandler) UpdateRaceResult(c *gin.Context) {
	req := middleware.Body[service.UpdateRaceResultRequest](c)
	result, err := h.results.UpdateInRace(c.Request.Context(), middleware.Param(c, "id"), middleware.Param(c, "resultId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
