package main

import (
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/litongxue7788/diabetic-diet-analyzer/config"
	"github.com/litongxue7788/diabetic-diet-analyzer/metrics"
	"github.com/litongxue7788/diabetic-diet-analyzer/routes"
	"github.com/litongxue7788/diabetic-diet-analyzer/services"
	"github.com/litongxue7788/diabetic-diet-analyzer/utils"
)

func main() {
	config.Load()
	if err := config.InitDB(); err != nil {
		log.Fatalf("init db: %v", err)
	}
	utils.InitS3()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	var history *services.HistoryService
	if config.DB != nil {
		history = services.NewHistoryService(config.DB)
	}

	r := routes.SetupRouter(reg, collector, history)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
