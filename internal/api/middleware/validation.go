package middleware

import (
	"errors"
	"net/http"

	apperrors "motorsport-backend/internal/errors"
	"motorsport-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	bodyKey  = "validated_body"
	queryKey = "validated_query"
	paramKey = "uuid_param:"
)

// UUIDParams rejects the request with 400 unless every named path parameter is a UUID
func UUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			id, err := uuid.Parse(c.Param(name))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "Invalid " + name + " format",
					"field": name,
				})
				return
			}
			c.Set(paramKey+name, id)
		}
		c.Next()
	}
}

// ValidateJSON binds the JSON body into a T and validates it with v
func ValidateJSON[T any](v *validator.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
		if !validated(c, v, &body) {
			return
		}
		c.Set(bodyKey, &body)
		c.Next()
	}
}

// ValidateQuery binds the query string into a T and validates it with v
func ValidateQuery[T any](v *validator.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query T
		if err := c.ShouldBindQuery(&query); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
			return
		}
		if !validated(c, v, &query) {
			return
		}
		c.Set(queryKey, &query)
		c.Next()
	}
}

// Body returns the body bound by ValidateJSON[T]
func Body[T any](c *gin.Context) *T {
	body, _ := c.MustGet(bodyKey).(*T)
	return body
}

// Query returns the query bound by ValidateQuery[T], or the zero value when none was bound
func Query[T any](c *gin.Context) T {
	if q, ok := c.Get(queryKey); ok {
		if typed, ok := q.(*T); ok {
			return *typed
		}
	}
	var zero T
	return zero
}

// Param returns the UUID validated by UUIDParams
func Param(c *gin.Context, name string) uuid.UUID {
	id, _ := c.MustGet(paramKey + name).(uuid.UUID)
	return id
}

func validated(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := service.ValidateStruct(v, req); err != nil {
		body := gin.H{"error": err.Error()}
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) && verr.Field != "" {
			body["field"] = verr.Field
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
		return false
	}
	return true
}
