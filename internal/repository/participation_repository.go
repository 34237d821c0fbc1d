package repository

import (
	"time"

	"sofreh_salawat_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipationRepository struct {
	DB *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

// Upsert records a contribution for (user, prayer, day). The conflict
// target is the composite unique index; on conflict the existing row's
// count is incremented atomically by the storage engine.
func (r *ParticipationRepository) Upsert(tx *gorm.DB, userID, prayerID string, day time.Time, count int64) error {
	p := &model.Participation{
		UserID:   userID,
		PrayerID: prayerID,
		Date:     day,
		Count:    count,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "prayer_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("count + ?", count),
			"updated_at": time.Now(),
		}),
	}).Create(p).Error
}

func (r *ParticipationRepository) FindByUserPrayerDay(tx *gorm.DB, userID, prayerID string, day time.Time) (*model.Participation, error) {
	var p model.Participation
	err := tx.Where("user_id = ? AND prayer_id = ? AND date = ?", userID, prayerID, day).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepository) ListByUser(userID string, page, limit int) ([]model.Participation, int64, error) {
	var participations []model.Participation
	var total int64

	query := r.DB.Model(&model.Participation{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Where("user_id = ?", userID).
		Preload("Prayer").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&participations).Error
	return participations, total, err
}

// CountDistinctParticipants counts distinct contributing users for a campaign.
func (r *ParticipationRepository) CountDistinctParticipants(tx *gorm.DB, prayerID string) (int64, error) {
	var count int64
	err := tx.Model(&model.Participation{}).
		Where("prayer_id = ?", prayerID).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// CountDistinctDays counts distinct contribution days for a campaign.
func (r *ParticipationRepository) CountDistinctDays(tx *gorm.DB, prayerID string) (int64, error) {
	var count int64
	err := tx.Model(&model.Participation{}).
		Where("prayer_id = ?", prayerID).
		Distinct("date").
		Count(&count).Error
	return count, err
}

// SumCounts sums all recorded counts for a campaign; the stats
// recompute treats it as ground truth for prayer.current_count.
func (r *ParticipationRepository) SumCounts(tx *gorm.DB, prayerID string) (int64, error) {
	var sum int64
	err := tx.Model(&model.Participation{}).
		Where("prayer_id = ?", prayerID).
		Select("COALESCE(SUM(count), 0)").
		Scan(&sum).Error
	return sum, err
}

// CountByUser counts a user's participation rows across all campaigns.
func (r *ParticipationRepository) CountByUser(tx *gorm.DB, userID string) (int64, error) {
	var count int64
	err := tx.Model(&model.Participation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
