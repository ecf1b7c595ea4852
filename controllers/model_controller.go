package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litongxue7788/diabetic-diet-analyzer/models"
)

// modelCatalog is the static list of selectable vision models. IDs must
// resolve to a provider adapter; the rest is display metadata for the UI.
var modelCatalog = []models.ModelInfo{
	{
		ID:           "gemini-pro-vision",
		Name:         "Google Gemini Pro Vision",
		Description:  "Google最新视觉模型，适合食物识别和营养分析",
		Provider:     "Google",
		MaxImageSize: "10MB",
		Status:       "available",
	},
	{
		ID:           "gemini-2.0-flash",
		Name:         "Gemini 2.0 Flash",
		Description:  "快速响应模型，平衡速度和准确性",
		Provider:     "Google",
		MaxImageSize: "10MB",
		Status:       "available",
	},
	{
		ID:           "qwen-vl-plus",
		Name:         "Qwen-VL-Plus",
		Description:  "阿里通义千问视觉模型，支持图片多模态理解",
		Provider:     "Ali",
		MaxImageSize: "10MB",
		Status:       "available",
	},
	{
		ID:           "deepseek-vl",
		Name:         "DeepSeek-V3 (Chat)",
		Description:  "DeepSeek官方API (纯文本) / 自定义端点 (支持VL)",
		Provider:     "DeepSeek",
		MaxImageSize: "10MB",
		Status:       "available",
	},
	{
		ID:           "yi-vision",
		Name:         "Yi-Vision (零一万物)",
		Description:  "零一万物高表现力视觉模型，中文理解能力强",
		Provider:     "Yi",
		MaxImageSize: "10MB",
		Status:       "available",
	},
	{
		ID:           "glm-4v",
		Name:         "GLM-4V (智谱AI)",
		Description:  "智谱AI最新视觉模型，国产模型第一梯队，擅长中文识别",
		Provider:     "Zhipu",
		MaxImageSize: "10MB",
		Status:       "available",
	},
	{
		ID:           "doubao-vision",
		Name:         "Doubao Vision (豆包/火山引擎)",
		Description:  "字节跳动豆包大模型，视觉理解能力出色",
		Provider:     "Doubao",
		MaxImageSize: "10MB",
		Status:       "available",
	},
}

// GET /api/models
func ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"models":       modelCatalog,
		"defaultModel": defaultModel,
	})
}
