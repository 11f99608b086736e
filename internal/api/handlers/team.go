package handlers

import (
	"motorsport-backend/internal/api/registry"
	"motorsport-backend/internal/database/models"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	resource[models.Team, service.CreateTeamRequest, service.UpdateTeamRequest]
	validator *validator.Validate
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		resource:  resource[models.Team, service.CreateTeamRequest, service.UpdateTeamRequest]{svc: teamService},
		validator: validator,
	}
}

// Routes returns the team routes
func (h *TeamHandler) Routes() []registry.Route {
	return crudRoutes[service.CreateTeamRequest, service.UpdateTeamRequest](h.validator, "/teams", "teams", crud{
		List:    h.ListTeams,
		Get:     h.GetTeam,
		Create:  h.CreateTeam,
		Replace: h.ReplaceTeam,
		Update:  h.UpdateTeam,
		Delete:  h.DeleteTeam,
	})
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get one page of teams with the total count
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.Team] "Successfully retrieved teams"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	h.list(c)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a specific team by its UUID, with its related entities
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} models.Team "Successfully retrieved team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	h.get(c)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team. driver_ids that do not exist are ignored; business_address_id must exist.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Team already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	h.create(c)
}

// ReplaceTeam handles PUT /teams/:id
// @Summary Replace team
// @Description Overwrite every field of an existing team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 200 {object} models.Team "Successfully replaced team"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) ReplaceTeam(c *gin.Context) {
	h.replace(c)
}

// UpdateTeam handles PATCH /teams/:id
// @Summary Update team
// @Description Update the fields present in the body
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Team "Successfully updated team"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	h.update(c)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete team
// @Description Delete a team by its UUID
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	h.delete(c)
}
