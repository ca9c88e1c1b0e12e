package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	MsgInternalError = "Internal server error"
)

// Every reply is HTTP 200; the outcome travels in the "status" field.

// Success writes {"status":"success", ...payload}.
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"status": StatusSuccess}
	for k, v := range payload {
		if k == "status" {
			continue
		}
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error writes {"status":"error","message":message}.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  StatusError,
		"message": message,
	})
}

// Text writes a plain-text reply.
func Text(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}
