package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping answers the root status route.
func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Servidor online")
	}
}
