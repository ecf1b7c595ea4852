package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/litongxue7788/diabetic-diet-analyzer/models"
)

// maxHistoryEntries matches the rolling history the web client keeps.
const maxHistoryEntries = 30

// HistoryService persists trimmed analysis projections. The analyze path
// itself stays stateless; history is an optional record of past results.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Append stores the trimmed projection of a structured report and prunes
// everything beyond the most recent entries. Raw-text fallback reports carry
// no totals and are not recorded.
func (s *HistoryService) Append(model string, report *models.Report) error {
	if s == nil || s.db == nil || report == nil || !report.IsStructured() {
		return nil
	}

	rec := models.AnalysisRecord{
		ID:        uuid.NewString(),
		Model:     model,
		RiskLevel: report.RiskLevel,
	}
	if report.Nutrition != nil {
		rec.NetCarbs = report.Nutrition.NetCarbs
		rec.Calories = report.Nutrition.Calories
	}

	if err := s.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("保存分析记录失败: %w", err)
	}
	return s.prune()
}

func (s *HistoryService) prune() error {
	keep := s.db.Model(&models.AnalysisRecord{}).
		Select("id").
		Order("created_at DESC").
		Limit(maxHistoryEntries)
	return s.db.Where("id NOT IN (?)", keep).Delete(&models.AnalysisRecord{}).Error
}

// List returns the retained records, newest first.
func (s *HistoryService) List() ([]models.AnalysisRecord, error) {
	var records []models.AnalysisRecord
	err := s.db.Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("读取分析记录失败: %w", err)
	}
	return records, nil
}

// Clear removes all retained records.
func (s *HistoryService) Clear() error {
	err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.AnalysisRecord{}).Error
	if err != nil {
		return fmt.Errorf("清空分析记录失败: %w", err)
	}
	return nil
}
