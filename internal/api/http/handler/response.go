package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/authgate-server/internal/apierror"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"

	msgInvalidBody = "request body must be valid JSON"
)

// Success writes fields plus message under the "data" envelope.
func Success(c *gin.Context, code int, msg string, fields gin.H) {
	data := gin.H{}
	for k, v := range fields {
		data[k] = v
	}
	data["message"] = msg
	data["status"] = statusSuccess
	c.JSON(code, gin.H{"data": data})
}

// Fail aborts the request with err translated to a status and message.
func Fail(c *gin.Context, err error) {
	apiErr := apierror.FromError(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus, gin.H{
		"data": gin.H{
			"message": apiErr.Message,
			"status":  statusFailed,
		},
	})
}
