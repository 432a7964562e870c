package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Feni2Backend/config/authorization"
	"Feni2Backend/services"
	"Feni2Backend/util"
)

func Auth(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", RegisterAdmin)
		auth.POST("/login", LoginAdmin)
		auth.GET("/check", authorization.JWTAuth(), CheckAuth)
	}
}

/*
* Bind the credentials and hand them to the register service.
 */
func RegisterAdmin(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.EMAIL_AND_PASSWORD_REQUIRED))
		return
	}

	result, err := services.Register(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(util.REGISTRATION_SUCCESSFUL, result))
}

/*
* Any login failure answers 401 with the same message, so the endpoint
* does not reveal which half of the credentials was wrong.
 */
func LoginAdmin(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.EMAIL_AND_PASSWORD_REQUIRED))
		return
	}

	result, err := services.Login(c, data)
	if err != nil {
		if err.Error() == util.EMAIL_AND_PASSWORD_REQUIRED {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err.Error()))
			return
		}
		c.JSON(http.StatusUnauthorized, util.FailedResponse(util.INVALID_CREDENTIALS))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(util.LOGIN_SUCCESSFUL, result))
}

// CheckAuth echoes the identity JWTAuth decoded into the context.
func CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, util.SuccessResponse(util.AUTHENTICATED, gin.H{
		"admin": gin.H{
			"id":    c.GetString("adminId"),
			"email": c.GetString("email"),
			"role":  c.GetString("role"),
		},
	}))
}
