package middleware

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aniket-sharma10/e-commerce-store/apierrors"
)

const AccessTokenCookie = "access_token"

// ValidateToken reads the signed session cookie and populates the
// request-scoped identity (user id + admin flag). Stateless, no session store.
func ValidateToken(c *gin.Context) {
	tokenString, err := c.Cookie(AccessTokenCookie)
	if err != nil || tokenString == "" {
		c.Error(apierrors.NewUnauthenticated("Please log in to continue!"))
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.Error(apierrors.NewUnauthenticated("Please log in to continue!"))
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.Error(apierrors.NewUnauthenticated("Please log in to continue!"))
		c.Abort()
		return
	}

	userID, _ := claims["userId"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)
	if userID == "" {
		c.Error(apierrors.NewUnauthenticated("Please log in to continue!"))
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Set("is_admin", isAdmin)
	c.Next()
}
