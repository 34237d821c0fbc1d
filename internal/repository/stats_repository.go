package repository

import (
	"sofreh_salawat_backend/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) CreatePrayerStats(tx *gorm.DB, prayerID string) error {
	return tx.Create(&model.PrayerStats{PrayerID: prayerID}).Error
}

func (r *StatsRepository) FindPrayerStats(prayerID string) (*model.PrayerStats, error) {
	var stats model.PrayerStats
	err := r.DB.Where("prayer_id = ?", prayerID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) UpdatePrayerStats(tx *gorm.DB, prayerID string, participants int64, avgDaily, completionRate float64) error {
	return tx.Model(&model.PrayerStats{}).
		Where("prayer_id = ?", prayerID).
		Updates(map[string]interface{}{
			"total_participants":  participants,
			"average_daily_count": avgDaily,
			"completion_rate":     completionRate,
		}).Error
}

func (r *StatsRepository) CreateUserStats(tx *gorm.DB, userID string) error {
	return tx.Create(&model.UserStats{UserID: userID}).Error
}

func (r *StatsRepository) FindUserStats(userID string) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where("user_id = ?", userID).Preload("User").First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// AddUserPrayers bumps total_prayers atomically and overwrites
// total_participations with the row count the caller derived inside
// the same transaction.
func (r *StatsRepository) AddUserPrayers(tx *gorm.DB, userID string, count, participations int64) error {
	return tx.Model(&model.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_prayers":        gorm.Expr("total_prayers + ?", count),
			"total_participations": participations,
		}).Error
}
