// internal/ui/rest/router/functional.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/khedhrije/portfolio-api/internal/ui/rest/handlers"
)

// RegisterFunctionalRoutes wires the portfolio endpoints under the /api group.
// Keep tech/ops endpoints in technical.go.
func RegisterFunctionalRoutes(api *gin.RouterGroup, portfolio handlers.Portfolio) {
	api.GET("/categorias", portfolio.Categorias())
	api.GET("/skills", portfolio.Skills())
	api.GET("/formacao", portfolio.Formacao())
}
