// Package metricsapi exposes the Prometheus registry behind authentication.
package metricsapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsController serves the metrics scrape endpoint.
type MetricsController struct {
	handler http.Handler
}

// NewMetricsController initializes a MetricsController for g.
func NewMetricsController(g prometheus.Gatherer) *MetricsController {
	return &MetricsController{
		handler: promhttp.HandlerFor(g, promhttp.HandlerOpts{}),
	}
}

// RegisterPublic registers public routes.
func (c *MetricsController) RegisterPublic(route *gin.RouterGroup) {
}

// RegisterProtected registers privileged routes.
func (c *MetricsController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/metrics", gin.WrapH(c.handler))
}
