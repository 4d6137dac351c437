package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
)

// respondError translates the error taxonomy into an HTTP status and the
// uniform {"error": ...} body. Anything unclassified is a 500 with the
// detail kept out of the response.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	switch {
	case errors.Is(err, models.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrInsufficientInventory):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, models.ErrConflict):
		status, msg = http.StatusConflict, err.Error()
	default:
		_ = c.Error(err)
	}

	c.AbortWithStatusJSON(status, models.ErrorBody{Error: msg})
}

// sessionClaims returns the authenticated session, or nil on public routes.
func sessionClaims(c *gin.Context) *helpers.SessionClaims {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	claims, _ := v.(*helpers.SessionClaims)
	return claims
}
