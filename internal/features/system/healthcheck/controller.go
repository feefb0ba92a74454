package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.Healthcheck)
}

func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	if err := c.healthcheckService.Check(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
