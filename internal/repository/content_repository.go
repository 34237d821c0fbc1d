package repository

import (
	"sofreh_salawat_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) Create(content *model.ReligiousContent) error {
	return r.DB.Create(content).Error
}

func (r *ContentRepository) FindByID(id string) (*model.ReligiousContent, error) {
	var content model.ReligiousContent
	err := r.DB.First(&content, "id = ?", id).Error
	return &content, err
}

// ListActive returns active content, optionally filtered by type,
// newest first.
func (r *ContentRepository) ListActive(contentType model.ContentType, page, limit int) ([]model.ReligiousContent, int64, error) {
	var items []model.ReligiousContent
	var total int64

	query := r.DB.Model(&model.ReligiousContent{}).Where("is_active = ?", true)
	if contentType != "" {
		query = query.Where("type = ?", contentType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	return items, total, err
}

func (r *ContentRepository) ListActiveByType(contentType model.ContentType) ([]model.ReligiousContent, error) {
	var items []model.ReligiousContent
	err := r.DB.
		Where("type = ? AND is_active = ?", contentType, true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *ContentRepository) Update(content *model.ReligiousContent) error {
	return r.DB.Save(content).Error
}

func (r *ContentRepository) Delete(id string) error {
	return r.DB.Delete(&model.ReligiousContent{}, "id = ?", id).Error
}
