package handlers

import (
	"net/http"

	"motorsport-backend/internal/api/middleware"
	"motorsport-backend/internal/api/registry"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// resource serves the six CRUD endpoints of one entity.
// C is the create/replace payload and U the partial update payload.
type resource[T, C, U any] struct {
	svc service.EntityService[T, C, U]
}

func (r resource[T, C, U]) list(c *gin.Context) {
	res, err := r.svc.List(c.Request.Context(), middleware.Query[service.ListQuery](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (r resource[T, C, U]) get(c *gin.Context) {
	entity, err := r.svc.Get(c.Request.Context(), middleware.Param(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (r resource[T, C, U]) create(c *gin.Context) {
	entity, err := r.svc.Create(c.Request.Context(), middleware.Body[C](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

func (r resource[T, C, U]) replace(c *gin.Context) {
	entity, err := r.svc.Replace(c.Request.Context(), middleware.Param(c, "id"), middleware.Body[C](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (r resource[T, C, U]) update(c *gin.Context) {
	entity, err := r.svc.Update(c.Request.Context(), middleware.Param(c, "id"), middleware.Body[U](c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (r resource[T, C, U]) delete(c *gin.Context) {
	if err := r.svc.Delete(c.Request.Context(), middleware.Param(c, "id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// crud names the handler of each CRUD endpoint
type crud struct {
	List, Get, Create, Replace, Update, Delete gin.HandlerFunc
}

// crudRoutes declares the collection and item routes of path with their validators
func crudRoutes[C, U any](v *validator.Validate, path, tag string, h crud) []registry.Route {
	item := path + "/:id"
	tags := []string{tag}
	id := middleware.UUIDParams("id")

	return []registry.Route{
		{Method: http.MethodGet, Path: path, Handler: h.List, Tags: tags, Summary: "List " + tag,
			Validators: []gin.HandlerFunc{middleware.ValidateQuery[service.ListQuery](v)}},
		{Method: http.MethodGet, Path: item, Handler: h.Get, Tags: tags, Summary: "Get " + tag + " by id",
			Validators: []gin.HandlerFunc{id}},
		{Method: http.MethodPost, Path: path, Handler: h.Create, Tags: tags, Summary: "Create " + tag,
			Validators: []gin.HandlerFunc{middleware.ValidateJSON[C](v)}},
		{Method: http.MethodPut, Path: item, Handler: h.Replace, Tags: tags, Summary: "Replace " + tag,
			Validators: []gin.HandlerFunc{id, middleware.ValidateJSON[C](v)}},
		{Method: http.MethodPatch, Path: item, Handler: h.Update, Tags: tags, Summary: "Update " + tag,
			Validators: []gin.HandlerFunc{id, middleware.ValidateJSON[U](v)}},
		{Method: http.MethodDelete, Path: item, Handler: h.Delete, Tags: tags, Summary: "Delete " + tag,
			Validators: []gin.HandlerFunc{id}},
	}
}
