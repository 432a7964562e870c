package authorization

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Feni2Backend/config/jwt"
	"Feni2Backend/models"
	"Feni2Backend/util"
)

/*
* JWTAuth verifies the bearer token and puts the decoded identity
* into the gin context for the handlers downstream.
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.NO_TOKEN_PROVIDED))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.NO_TOKEN_PROVIDED))
			return
		}

		claims, err := jwt.ValidateJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.INVALID_TOKEN))
			return
		}

		c.Set("adminId", claims.ID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly allows only role=admin past. Must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.ACCESS_DENIED))
			return
		}
		c.Next()
	}
}
