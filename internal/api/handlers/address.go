package handlers

import (
	"motorsport-backend/internal/api/registry"
	"motorsport-backend/internal/database/models"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AddressHandler handles HTTP requests for address operations
type AddressHandler struct {
	resource[models.Address, service.CreateAddressRequest, service.UpdateAddressRequest]
	validator *validator.Validate
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addressService service.AddressServiceInterface, validator *validator.Validate) *AddressHandler {
	return &AddressHandler{
		resource:  resource[models.Address, service.CreateAddressRequest, service.UpdateAddressRequest]{svc: addressService},
		validator: validator,
	}
}

// Routes returns the address routes
func (h *AddressHandler) Routes() []registry.Route {
	return crudRoutes[service.CreateAddressRequest, service.UpdateAddressRequest](h.validator, "/addresses", "addresses", crud{
		List:    h.ListAddresses,
		Get:     h.GetAddress,
		Create:  h.CreateAddress,
		Replace: h.ReplaceAddress,
		Update:  h.UpdateAddress,
		Delete:  h.DeleteAddress,
	})
}

// ListAddresses handles GET /addresses
// @Summary List addresses
// @Description Get one page of addresses with the total count
// @Tags addresses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Param sort query string false "Comma separated fields, prefix with - for descending"
// @Success 200 {object} service.ListResult[models.Address] "Successfully retrieved addresses"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /addresses [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	h.list(c)
}

// GetAddress handles GET /addresses/:id
// @Summary Get address by ID
// @Description Get a specific address by its UUID
// @Tags addresses
// @Produce json
// @Param id path string true "Address ID (UUID)"
// @Success 200 {object} models.Address "Successfully retrieved address"
// @Failure 400 {object} map[string]interface{} "Invalid address ID"
// @Failure 404 {object} map[string]interface{} "Address not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /addresses/{id} [get]
func (h *AddressHandler) GetAddress(c *gin.Context) {
	h.get(c)
}

// CreateAddress handles POST /addresses
// @Summary Create a new address
// @Description Create an address with the provided details
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body service.CreateAddressRequest true "Address data"
// @Success 201 {object} models.Address "Successfully created address"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Address already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	h.create(c)
}

// ReplaceAddress handles PUT /addresses/:id
// @Summary Replace address
// @Description Overwrite every field of an existing address
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Address ID (UUID)"
// @Param address body service.CreateAddressRequest true "Address data"
// @Success 200 {object} models.Address "Successfully replaced address"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Address not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /addresses/{id} [put]
func (h *AddressHandler) ReplaceAddress(c *gin.Context) {
	h.replace(c)
}

// UpdateAddress handles PATCH /addresses/:id
// @Summary Update address
// @Description Update the fields present in the body
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Address ID (UUID)"
// @Param address body service.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.Address "Successfully updated address"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Address not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /addresses/{id} [patch]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	h.update(c)
}

// DeleteAddress handles DELETE /addresses/:id
// @Summary Delete address
// @Description Delete an address by its UUID
// @Tags addresses
// @Param id path string true "Address ID (UUID)"
// @Success 204 "Address deleted"
// @Failure 400 {object} map[string]interface{} "Invalid address ID"
// @Failure 404 {object} map[string]interface{} "Address not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	h.delete(c)
}
