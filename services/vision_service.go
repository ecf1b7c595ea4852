package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/litongxue7788/diabetic-diet-analyzer/metrics"
	"github.com/litongxue7788/diabetic-diet-analyzer/models"
	"github.com/litongxue7788/diabetic-diet-analyzer/utils"
)

// visionPrompt is the shared instruction sent to every provider. It pins the
// exact field names the normalizer expects, though models frequently ignore
// parts of it, hence the normalizer's tolerance.
const visionPrompt = `你是一位专业的糖尿病营养师，拥有10年临床经验。请分析这张食物图片，并以纯JSON格式返回以下字段，不要包含任何其他文字：

{
  "foods": [{"name": "食物名称", "estimated_weight": "150g", "nutrients": {"carbs": 0, "protein": 0, "fat": 0, "fiber": 0}}],
  "nutrition": {"total_carbs": "0g", "fiber": "0g", "net_carbs": "0g", "gl_level": "低/中/高", "calories": "0kcal"},
  "risk_level": "低/中/高",
  "recommendations": ["针对糖尿病患者的3-5条具体行动建议"],
  "disclaimer": "免责声明"
}

要求：
1. 列出所有可见的食物，并估算每样食物的重量（克）
2. 估算总碳水化合物、膳食纤维、净碳水化合物（克）和总热量（千卡）
3. 基于净碳水和升糖负荷给出风险等级
4. 只返回JSON，不要添加解释或代码块标记`

const defaultTimeout = 60 * time.Second

// Provider identifies one upstream vision API and how to talk to it.
type Provider struct {
	Name           string
	KeyEnv         string
	DefaultBaseURL string
	Native         bool // Gemini generateContent shape instead of chat/completions
}

var providerRegistry = map[string]*Provider{
	"google":     {Name: "google", KeyEnv: "GEMINI_API_KEY", DefaultBaseURL: "https://generativelanguage.googleapis.com", Native: true},
	"alibaba":    {Name: "alibaba", KeyEnv: "DASHSCOPE_API_KEY", DefaultBaseURL: "https://dashscope.aliyuncs.com/compatible-mode/v1"},
	"deepseek":   {Name: "deepseek", KeyEnv: "DEEPSEEK_API_KEY", DefaultBaseURL: "https://api.deepseek.com/v1"},
	"yi":         {Name: "yi", KeyEnv: "YI_API_KEY", DefaultBaseURL: "https://api.lingyiwanwu.com/v1"},
	"zhipu":      {Name: "zhipu", KeyEnv: "ZHIPU_API_KEY", DefaultBaseURL: "https://open.bigmodel.cn/api/paas/v4"},
	"volcengine": {Name: "volcengine", KeyEnv: "ARK_API_KEY", DefaultBaseURL: "https://ark.cn-beijing.volces.com/api/v3"},
}

// ResolveProvider picks the adapter for a model identifier by prefix.
// Unrecognized identifiers fall back to Google.
func ResolveProvider(model string) *Provider {
	lower := strings.ToLower(model)
	switch {
	case strings.HasPrefix(lower, "gemini"):
		return providerRegistry["google"]
	case strings.HasPrefix(lower, "qwen"):
		return providerRegistry["alibaba"]
	case strings.HasPrefix(lower, "deepseek"):
		return providerRegistry["deepseek"]
	case strings.HasPrefix(lower, "yi"):
		return providerRegistry["yi"]
	case strings.HasPrefix(lower, "glm"):
		return providerRegistry["zhipu"]
	case strings.HasPrefix(lower, "doubao"):
		return providerRegistry["volcengine"]
	default:
		return providerRegistry["google"]
	}
}

// CredentialStatus reports, per provider, whether its server-side API key is
// set. Used by the health probe; values are "configured" or "missing".
func CredentialStatus() map[string]string {
	out := make(map[string]string, len(providerRegistry))
	for name, p := range providerRegistry {
		if os.Getenv(p.KeyEnv) != "" {
			out[name] = "configured"
		} else {
			out[name] = "missing"
		}
	}
	return out
}

// AnalyzeRequest is one meal-photo analysis against one provider.
type AnalyzeRequest struct {
	Model    string
	APIKey   string // optional override; otherwise the provider env var
	BaseURL  string // optional override, SSRF-guarded
	Endpoint string // Volcengine inference endpoint ID
	Image    []byte
	MimeType string
}

// VisionService dispatches analysis requests to vision-LLM providers and
// returns their raw response text.
type VisionService struct {
	// HTTPClient is injected by tests. When nil, production calls use a
	// plain client with a bounded timeout, or an SSRF-safe client when the
	// request carries a base-URL override.
	HTTPClient *http.Client
	Timeout    time.Duration
	Metrics    *metrics.Collector
}

func NewVisionService(collector *metrics.Collector) *VisionService {
	return &VisionService{Timeout: defaultTimeout, Metrics: collector}
}

func (s *VisionService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return defaultTimeout
}

// Analyze sends the image to the resolved provider and returns the model's
// raw text. Exactly one provider is called per request.
func (s *VisionService) Analyze(ctx context.Context, req AnalyzeRequest) (string, error) {
	p := ResolveProvider(req.Model)

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(p.KeyEnv)
	}
	if apiKey == "" {
		s.Metrics.RecordAnalyze(p.Name, "config_error")
		return "", &models.ConfigurationError{Credential: p.KeyEnv}
	}

	baseURL := strings.TrimRight(p.DefaultBaseURL, "/")
	client := s.HTTPClient
	if req.BaseURL != "" {
		baseURL = strings.TrimRight(req.BaseURL, "/")
		if client == nil {
			if err := utils.ValidateBaseURL(req.BaseURL); err != nil {
				s.Metrics.RecordAnalyze(p.Name, "validation_error")
				return "", &models.ValidationError{Message: "无效的 baseUrl: " + err.Error()}
			}
			client = utils.SafeClient(s.timeout())
		}
	}
	if client == nil {
		client = &http.Client{Timeout: s.timeout()}
	}

	// The key travels in a header on every path. Transport errors quote the
	// full request URL, and those messages end up in client-facing error
	// responses, so the URL must never carry the credential.
	var (
		endpoint   string
		body       []byte
		authHeader string
		authValue  string
		err        error
	)
	if p.Native {
		endpoint = fmt.Sprintf("%s/v1beta/models/%s:generateContent", baseURL, req.Model)
		authHeader, authValue = "x-goog-api-key", apiKey
		body, err = buildGeminiBody(visionPrompt, req.Image, req.MimeType)
	} else {
		endpoint = baseURL + "/chat/completions"
		authHeader, authValue = "Authorization", "Bearer "+apiKey
		model := req.Model
		if p.Name == "volcengine" && req.Endpoint != "" {
			// Ark addresses deployed models by inference endpoint ID.
			model = req.Endpoint
		}
		body, err = buildChatBody(model, visionPrompt, req.Image, req.MimeType)
	}
	if err != nil {
		return "", fmt.Errorf("构建 %s 请求失败: %w", p.Name, err)
	}

	start := time.Now()
	respBody, status, err := s.post(ctx, client, endpoint, body, authHeader, authValue)
	s.Metrics.RecordProviderLatency(time.Since(start))
	if err != nil {
		s.Metrics.RecordAnalyze(p.Name, "network_error")
		return "", fmt.Errorf("请求 %s 失败: %w", p.Name, err)
	}

	if status < 200 || status >= 300 {
		if status == http.StatusBadRequest && strings.Contains(string(respBody), "image_url") {
			s.Metrics.RecordAnalyze(p.Name, "unsupported_media")
			return "", &models.UnsupportedMediaError{Provider: p.Name}
		}
		s.Metrics.RecordAnalyze(p.Name, "provider_error")
		return "", &models.ProviderError{Provider: p.Name, StatusCode: status, Body: truncate(string(respBody), 500)}
	}

	var text string
	if p.Native {
		text = parseGeminiText(respBody)
	} else {
		text = parseChatText(respBody)
	}
	if strings.TrimSpace(text) == "" {
		s.Metrics.RecordAnalyze(p.Name, "empty_response")
		return "", &models.EmptyResponseError{Provider: p.Name}
	}

	s.Metrics.RecordAnalyze(p.Name, "ok")
	return text, nil
}

// post issues the outbound call with a single retry on transport failure.
// HTTP error statuses are returned to the caller untouched and never
// retried.
func (s *VisionService) post(ctx context.Context, client *http.Client, url string, body []byte, authHeader, authValue string) ([]byte, int, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Content-Type", "application/json")
		if authValue != "" {
			req.Header.Set(authHeader, authValue)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, 0, err
		}
		return b, resp.StatusCode, nil
	}
	return nil, 0, lastErr
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
