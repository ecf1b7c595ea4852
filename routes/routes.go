package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/litongxue7788/diabetic-diet-analyzer/controllers"
	"github.com/litongxue7788/diabetic-diet-analyzer/metrics"
	"github.com/litongxue7788/diabetic-diet-analyzer/middlewares"
	"github.com/litongxue7788/diabetic-diet-analyzer/services"
)

func SetupRouter(reg *prometheus.Registry, collector *metrics.Collector, history *services.HistoryService) *gin.Engine {
	r := gin.Default()

	vision := services.NewVisionService(collector)
	analyzeCtl := controllers.NewAnalyzeController(vision, history, collector)
	historyCtl := &controllers.HistoryController{History: history}

	limiter := middlewares.NewRateLimiter(20, 5)

	api := r.Group("/api")
	{
		api.POST("/analyze", limiter.Middleware(), analyzeCtl.Analyze)
		api.GET("/models", controllers.ListModels)
		api.GET("/health", controllers.Health)
		api.GET("/history", historyCtl.List)
		api.DELETE("/history", historyCtl.Clear)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	return r
}
