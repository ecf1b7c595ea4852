package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litongxue7788/diabetic-diet-analyzer/models"
	"github.com/litongxue7788/diabetic-diet-analyzer/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAnalyzer struct {
	text string
	err  error

	gotModel  string
	gotAPIKey string
}

func (s *stubAnalyzer) Analyze(_ context.Context, req services.AnalyzeRequest) (string, error) {
	s.gotModel = req.Model
	s.gotAPIKey = req.APIKey
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func analyzeRouter(stub *stubAnalyzer) *gin.Engine {
	r := gin.New()
	ac := NewAnalyzeController(stub, nil, nil)
	r.POST("/api/analyze", ac.Analyze)
	return r
}

// imageForm builds a multipart body with an image part carrying an explicit
// Content-Type, plus optional extra form fields.
func imageForm(t *testing.T, contentType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="meal.jpg"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)

	for k, v := range fields {
		w.WriteField(k, v)
	}
	w.Close()
	return buf, w.FormDataContentType()
}

func TestAnalyzeMissingImage(t *testing.T) {
	r := analyzeRouter(&stubAnalyzer{})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Fatalf("success = %v", resp["success"])
	}
	if resp["error"] != "请提供图片文件" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestAnalyzeRejectsUnsupportedImageType(t *testing.T) {
	r := analyzeRouter(&stubAnalyzer{})
	body, ct := imageForm(t, "image/gif", []byte("GIF89a"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAnalyzeRejectsOversizeImage(t *testing.T) {
	stub := &stubAnalyzer{text: "unreachable"}
	r := analyzeRouter(stub)

	body, ct := imageForm(t, "image/jpeg", make([]byte, maxImageSize+1), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "图片大小不能超过 10MB" {
		t.Fatalf("error = %v", resp["error"])
	}
	if stub.gotModel != "" {
		t.Fatal("provider must not be called for an oversize image")
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	stub := &stubAnalyzer{text: `{"foods": [{"name": "苹果", "estimated_weight": "100g"}], "risk_level": "低"}`}
	r := analyzeRouter(stub)

	body, ct := imageForm(t, "image/jpeg", []byte("fake-jpeg"), map[string]string{
		"model":  "qwen-vl-plus",
		"apiKey": "user-key",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if stub.gotModel != "qwen-vl-plus" || stub.gotAPIKey != "user-key" {
		t.Fatalf("request passthrough: model %q key %q", stub.gotModel, stub.gotAPIKey)
	}

	var resp struct {
		Success   bool           `json:"success"`
		Data      *models.Report `json:"data"`
		Model     string         `json:"model"`
		Timestamp string         `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Model != "qwen-vl-plus" {
		t.Fatalf("envelope: %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Fatalf("timestamp %q: %v", resp.Timestamp, err)
	}
	if resp.Data == nil || resp.Data.ColorCode != "green" {
		t.Fatalf("report: %+v", resp.Data)
	}
}

func TestAnalyzeDefaultModel(t *testing.T) {
	stub := &stubAnalyzer{text: "纯文本分析结果"}
	r := analyzeRouter(stub)

	body, ct := imageForm(t, "image/png", []byte("fake-png"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if stub.gotModel != "doubao-vision" {
		t.Fatalf("model = %q, want the default", stub.gotModel)
	}
}

func TestAnalyzeErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"configuration", &models.ConfigurationError{Credential: "GEMINI_API_KEY"}, http.StatusBadRequest},
		{"unsupported media", &models.UnsupportedMediaError{Provider: "deepseek"}, http.StatusBadRequest},
		{"provider failure", &models.ProviderError{Provider: "zhipu", StatusCode: 502, Body: "bad gateway"}, http.StatusInternalServerError},
		{"empty response", &models.EmptyResponseError{Provider: "alibaba"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := analyzeRouter(&stubAnalyzer{err: tt.err})
			body, ct := imageForm(t, "image/jpeg", []byte("fake"), nil)
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAnalyzeProviderErrorDetails(t *testing.T) {
	r := analyzeRouter(&stubAnalyzer{err: &models.ProviderError{Provider: "yi", StatusCode: 500, Body: "upstream exploded"}})
	body, ct := imageForm(t, "image/webp", []byte("fake"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]any
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["details"] != "upstream exploded" {
		t.Fatalf("details = %v", resp["details"])
	}
}
