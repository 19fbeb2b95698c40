package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
)

// ErrorHandler is the single exit point for failure responses. Handlers attach
// errors with c.Error and return; this middleware translates them into
// {"msg": ...} bodies, mapping datastore errors the same way for every route.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var apiErr *apierrors.APIError
		switch {
		case errors.As(err, &apiErr):
			c.JSON(apiErr.StatusCode, gin.H{"msg": apiErr.Message})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "No item found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Duplicate value entered for a unique field"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Something went wrong, try again later"})
		}
	}
}
