package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes {success:true, message?, ...fields}.
func OK(c *gin.Context, message string, fields gin.H) {
	write(c, http.StatusOK, message, fields)
}

func Created(c *gin.Context, message string, fields gin.H) {
	write(c, http.StatusCreated, message, fields)
}

func write(c *gin.Context, status int, message string, fields gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}
