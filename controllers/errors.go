package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation -> 400, not found -> 404, constraint or stale record -> 409,
// anything else -> 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var constraintErr *services.ConstraintError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &constraintErr), errors.Is(err, services.ErrStaleRecord):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Printf("Unhandled storage error on %s %s: %v",
			c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			&services.ValidationError{Message: name + " must be a positive integer"})
		return 0, false
	}
	// Zero is a well-formed id that no record can ever carry, so it gets the
	// same not-found answer a lookup would produce.
	if id == 0 {
		utils.RespondError(c, http.StatusNotFound, services.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}
