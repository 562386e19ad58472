package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/http/validation"
	"sbtcstore.com/app/internal/shared/apperr"
)

// engines pulls the session engines off the context. Routes are always
// registered behind the session middleware, so a miss is a wiring bug.
func engines(c *gin.Context) (*middleware.Engines, bool) {
	e, ok := middleware.CurrentEngines(c)
	if !ok {
		middleware.Fail(c, apperr.Wrap(errors.New("no session engines on context")))
		return nil, false
	}
	return e, true
}

// bindJSON binds the body into dst and converts validation failures into a
// field-keyed invalid error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request data.", validation.FromBindError(err, dst)))
		return false
	}
	return true
}
