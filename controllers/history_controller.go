package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litongxue7788/diabetic-diet-analyzer/services"
)

type HistoryController struct {
	History *services.HistoryService
}

// GET /api/history
func (hc *HistoryController) List(c *gin.Context) {
	if hc.History == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "历史记录功能未启用"})
		return
	}
	records, err := hc.History.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": records})
}

// DELETE /api/history
func (hc *HistoryController) Clear(c *gin.Context) {
	if hc.History == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "历史记录功能未启用"})
		return
	}
	if err := hc.History.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
