package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litongxue7788/diabetic-diet-analyzer/services"
)

const (
	serviceName    = "diabetic-diet-analyzer"
	serviceVersion = "1.0.0"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      serviceName,
		"version":      serviceVersion,
		"dependencies": services.CredentialStatus(),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
