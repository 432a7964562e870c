package util

import "github.com/gin-gonic/gin"

/*
* Every endpoint answers with the same envelope:
* {success, message, <resource>...}
 */
func SuccessResponse(message string, data gin.H) gin.H {
	resp := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range data {
		resp[k] = v
	}
	return resp
}

func FailedResponse(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}

// NotFoundError marks a lookup that found nothing, so controllers can
// answer 404 instead of the generic 400.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}
