package handlers

import (
	"motorsport-backend/internal/api/registry"
	"motorsport-backend/internal/database/models"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ClassHandler handles HTTP requests for racing class operations
type ClassHandler struct {
	resource[models.Class, service.CreateClassRequest, service.UpdateClassRequest]
	validator *validator.Validate
}

// NewClassHandler creates a new racing class handler
func NewClassHandler(classService service.ClassServiceInterface, validator *validator.Validate) *ClassHandler {
	return &ClassHandler{
		resource:  resource[models.Class, service.CreateClassRequest, service.UpdateClassRequest]{svc: classService},
		validator: validator,
	}
}

// Routes returns the racing class routes
func (h *ClassHandler) Routes() []registry.Route {
	return crudRoutes[service.CreateClassRequest, service.UpdateClassRequest](h.validator, "/classes", "classes", crud{
		List:    h.ListClasses,
		Get:     h.GetClass,
		Create:  h.CreateClass,
		Replace: h.ReplaceClass,
		Update:  h.UpdateClass,
		Delete:  h.DeleteClass,
	})
}

// ListClasses handles GET /classes
// @Summary List classes
// @Description Get one page of classes with the total count
// @Tags classes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.Class] "Successfully retrieved classes"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	h.list(c)
}

// GetClass handles GET /classes/:id
// @Summary Get class by ID
// @Description Get a specific class by its UUID
// @Tags classes
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Success 200 {object} models.Class "Successfully retrieved class"
// @Failure 400 {object} map[string]interface{} "Invalid class ID"
// @Failure 404 {object} map[string]interface{} "Class not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	h.get(c)
}

// CreateClass handles POST /classes
// @Summary Create a new class
// @Description Create a class with the provided details
// @Tags classes
// @Accept json
// @Produce json
// @Param class body service.CreateClassRequest true "Class data"
// @Success 201 {object} models.Class "Successfully created class"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Class already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	h.create(c)
}

// ReplaceClass handles PUT /classes/:id
// @Summary Replace class
// @Description Overwrite every field of an existing class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Param class body service.CreateClassRequest true "Class data"
// @Success 200 {object} models.Class "Successfully replaced class"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Class not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classes/{id} [put]
func (h *ClassHandler) ReplaceClass(c *gin.Context) {
	h.replace(c)
}

// UpdateClass handles PATCH /classes/:id
// @Summary Update class
// @Description Update the fields present in the body
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Param class body service.UpdateClassRequest true "Fields to update"
// @Success 200 {object} models.Class "Successfully updated class"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Class not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classes/{id} [patch]
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	h.update(c)
}

// DeleteClass handles DELETE /classes/:id
// @Summary Delete class
// @Description Delete a class by its UUID
// @Tags classes
// @Param id path string true "Class ID (UUID)"
// @Success 204 "Class deleted"
// @Failure 400 {object} map[string]interface{} "Invalid class ID"
// @Failure 404 {object} map[string]interface{} "Class not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classes/{id} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	h.delete(c)
}
