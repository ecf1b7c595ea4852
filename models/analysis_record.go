package models

import "time"

// AnalysisRecord is the trimmed projection of a report kept as rolling
// history, mirroring what the web client stores locally. At most the 30
// most recent records are retained.
type AnalysisRecord struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Model     string    `json:"model"`
	NetCarbs  string    `json:"net_carbs"`
	Calories  string    `json:"calories"`
	RiskLevel string    `json:"risk_level"`
}
