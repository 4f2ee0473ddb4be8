package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pedido-docs-api/internal/services"
)

// RouterConfig holds the services the routes depend on
type RouterConfig struct {
	ConfirmacaoService services.ConfirmacaoService
	ExportacaoService  services.ExportacaoService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	pedidoHandler := NewPedidoHandler(config.ConfirmacaoService, config.ExportacaoService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "pedido-docs-api",
			"timestamp": time.Now().UTC(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("/confirmacao", pedidoHandler.EnviarConfirmacao)
			pedidos.POST("/exportar-csv", pedidoHandler.ExportarCSV)
		}
	}
}
