package models

import "fmt"

// ValidationError rejects bad input before any provider is called.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError names the credential that must be set for the selected
// provider, so the message tells the user exactly what is missing.
type ConfigurationError struct {
	Credential string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("未配置 %s，请在环境变量中设置或在请求中提供 apiKey", e.Credential)
}

// ProviderError carries a non-2xx response from a vision API.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s 接口返回错误 (%d): %s", e.Provider, e.StatusCode, e.Body)
}

// UnsupportedMediaError means the selected endpoint rejected image input,
// typically a text-only model behind an OpenAI-compatible endpoint. Kept
// distinct from ProviderError so the user is told to switch models instead
// of retrying.
type UnsupportedMediaError struct {
	Provider string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("当前 %s 模型或端点不支持图片输入，请改用支持视觉的模型（如 qwen-vl-plus、glm-4v、doubao-vision）", e.Provider)
}

// EmptyResponseError: the provider answered 2xx but no usable text came back.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s 模型未返回任何内容，请重试", e.Provider)
}
