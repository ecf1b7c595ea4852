package models

// ModelInfo is one entry of the model catalog served to the UI.
type ModelInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Provider     string `json:"provider"`
	MaxImageSize string `json:"maxImageSize"`
	Status       string `json:"status"`
}
