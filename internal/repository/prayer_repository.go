package repository

import (
	"sofreh_salawat_backend/internal/model"

	"gorm.io/gorm"
)

type PrayerRepository struct {
	DB *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) *PrayerRepository {
	return &PrayerRepository{DB: db}
}

func (r *PrayerRepository) Create(prayer *model.Prayer) error {
	return r.DB.Create(prayer).Error
}

func (r *PrayerRepository) FindByID(id string) (*model.Prayer, error) {
	var prayer model.Prayer
	err := r.DB.First(&prayer, "id = ?", id).Error
	return &prayer, err
}

// FindByIDWithDetail loads creator, stats and the ten most recent
// participations for the detail view.
func (r *PrayerRepository) FindByIDWithDetail(id string) (*model.Prayer, error) {
	var prayer model.Prayer
	err := r.DB.
		Preload("Creator").
		Preload("Stats").
		Preload("Participations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(10)
		}).
		Preload("Participations.User").
		First(&prayer, "id = ?", id).Error
	return &prayer, err
}

// ListPublic returns public campaigns, optionally filtered by status,
// newest first.
func (r *PrayerRepository) ListPublic(status model.PrayerStatus, page, limit int) ([]model.Prayer, int64, error) {
	var prayers []model.Prayer
	var total int64

	query := r.DB.Model(&model.Prayer{}).Where("is_public = ?", true)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Creator").
		Preload("Stats").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&prayers).Error
	return prayers, total, err
}

// Update writes only the owner-mutable columns. current_count is owned
// by the participation path; writing it here would revert increments
// committed after the caller's read.
func (r *PrayerRepository) Update(prayer *model.Prayer) error {
	return r.DB.Model(prayer).
		Select("title", "description", "intention", "target_count", "end_date", "status", "is_public").
		Updates(prayer).Error
}

func (r *PrayerRepository) Delete(id string) error {
	return r.DB.Delete(&model.Prayer{}, "id = ?", id).Error
}

// IncrementCurrentCount adds count atomically in a single statement.
func (r *PrayerRepository) IncrementCurrentCount(tx *gorm.DB, id string, count int64) error {
	return tx.Model(&model.Prayer{}).
		Where("id = ?", id).
		Update("current_count", gorm.Expr("current_count + ?", count)).
		Error
}
