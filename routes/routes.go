package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Feni2Backend/controllers"
)

func Routes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Welcome to Feni-2 Backend!",
		})
	})

	v1 := r.Group("/api/v1")
	controllers.Auth(v1)
	controllers.Complaint(v1)
	controllers.Campaign(v1)
	controllers.Notice(v1)
}
