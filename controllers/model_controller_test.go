package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/litongxue7788/diabetic-diet-analyzer/models"
	"github.com/litongxue7788/diabetic-diet-analyzer/services"
)

func TestListModels(t *testing.T) {
	r := gin.New()
	r.GET("/api/models", ListModels)

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Success      bool               `json:"success"`
		Models       []models.ModelInfo `json:"models"`
		DefaultModel string             `json:"defaultModel"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || len(resp.Models) != 7 {
		t.Fatalf("models = %d", len(resp.Models))
	}
	if resp.DefaultModel != "doubao-vision" {
		t.Fatalf("defaultModel = %q", resp.DefaultModel)
	}

	// Every catalog entry must resolve to a provider adapter, and the
	// default model must be in the catalog.
	foundDefault := false
	for _, m := range resp.Models {
		if services.ResolveProvider(m.ID) == nil {
			t.Fatalf("model %q has no provider", m.ID)
		}
		if m.ID == resp.DefaultModel {
			foundDefault = true
		}
	}
	if !foundDefault {
		t.Fatal("default model missing from catalog")
	}
}

func TestHealth(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "configured-key")
	t.Setenv("ZHIPU_API_KEY", "")

	r := gin.New()
	r.GET("/api/health", Health)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Status       string            `json:"status"`
		Service      string            `json:"service"`
		Version      string            `json:"version"`
		Dependencies map[string]string `json:"dependencies"`
		Timestamp    string            `json:"timestamp"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Service != "diabetic-diet-analyzer" || resp.Version == "" {
		t.Fatalf("envelope: %+v", resp)
	}
	if len(resp.Dependencies) != 6 {
		t.Fatalf("dependencies = %v, want one entry per provider", resp.Dependencies)
	}
	if resp.Dependencies["google"] != "configured" {
		t.Fatalf("google = %q", resp.Dependencies["google"])
	}
	if resp.Dependencies["zhipu"] != "missing" {
		t.Fatalf("zhipu = %q", resp.Dependencies["zhipu"])
	}
}
