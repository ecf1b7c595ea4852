package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litongxue7788/diabetic-diet-analyzer/metrics"
	"github.com/litongxue7788/diabetic-diet-analyzer/models"
	"github.com/litongxue7788/diabetic-diet-analyzer/services"
	"github.com/litongxue7788/diabetic-diet-analyzer/utils"
)

const (
	maxImageSize = 10 << 20 // 10MB
	defaultModel = "doubao-vision"
)

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Analyzer is the outbound vision call, injected so handler tests can stub
// the provider.
type Analyzer interface {
	Analyze(ctx context.Context, req services.AnalyzeRequest) (string, error)
}

type AnalyzeController struct {
	Vision  Analyzer
	History *services.HistoryService
	Metrics *metrics.Collector
}

func NewAnalyzeController(vision Analyzer, history *services.HistoryService, collector *metrics.Collector) *AnalyzeController {
	return &AnalyzeController{Vision: vision, History: history, Metrics: collector}
}

// POST /api/analyze
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		ac.fail(c, &models.ValidationError{Message: "请提供图片文件"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !validImageTypes[contentType] {
		ac.fail(c, &models.ValidationError{Message: "仅支持 JPG、PNG、WEBP 格式的图片"})
		return
	}
	if header.Size > maxImageSize {
		ac.fail(c, &models.ValidationError{Message: "图片大小不能超过 10MB"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		ac.fail(c, &models.ValidationError{Message: "读取图片失败"})
		return
	}
	// The multipart header size is client-supplied; re-check the real length.
	if len(data) > maxImageSize {
		ac.fail(c, &models.ValidationError{Message: "图片大小不能超过 10MB"})
		return
	}

	model := c.PostForm("model")
	if model == "" {
		model = defaultModel
	}

	raw, err := ac.Vision.Analyze(c.Request.Context(), services.AnalyzeRequest{
		Model:    model,
		APIKey:   c.PostForm("apiKey"),
		BaseURL:  c.PostForm("baseUrl"),
		Endpoint: c.PostForm("endpoint"),
		Image:    data,
		MimeType: contentType,
	})
	if err != nil {
		ac.fail(c, err)
		return
	}

	report := services.BuildReport(raw)

	go utils.ArchiveMealImage(data, contentType)
	if err := ac.History.Append(model, report); err != nil {
		log.Printf("history append failed: %v", err)
	}

	ac.Metrics.RecordHTTPStatus(http.StatusOK)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      report,
		"model":     model,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// fail maps the error taxonomy onto HTTP statuses and the error envelope.
func (ac *AnalyzeController) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	resp := gin.H{"success": false, "error": err.Error()}

	var validationErr *models.ValidationError
	var configErr *models.ConfigurationError
	var mediaErr *models.UnsupportedMediaError
	var providerErr *models.ProviderError

	switch {
	case errors.As(err, &validationErr), errors.As(err, &configErr), errors.As(err, &mediaErr):
		status = http.StatusBadRequest
	case errors.As(err, &providerErr):
		resp["details"] = providerErr.Body
	}

	ac.Metrics.RecordHTTPStatus(status)
	c.JSON(status, resp)
}
