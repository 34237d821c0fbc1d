package service

import (
	"errors"
	"time"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/util"
	"sofreh_salawat_backend/pkg/logger"
	"sofreh_salawat_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PrayerService struct {
	PrayerRepo        *repository.PrayerRepository
	ParticipationRepo *repository.ParticipationRepository
	StatsRepo         *repository.StatsRepository
	DB                *gorm.DB
}

func NewPrayerService(prayerRepo *repository.PrayerRepository, participationRepo *repository.ParticipationRepository, statsRepo *repository.StatsRepository, db *gorm.DB) *PrayerService {
	return &PrayerService{
		PrayerRepo:        prayerRepo,
		ParticipationRepo: participationRepo,
		StatsRepo:         statsRepo,
		DB:                db,
	}
}

// CreatePrayerInput carries the validated request fields into the service.
type CreatePrayerInput struct {
	Title       string
	Description string
	Intention   string
	TargetCount int64
	StartDate   time.Time
	EndDate     *time.Time
	IsPublic    *bool
}

// Create persists the campaign together with its stats row.
func (s *PrayerService) Create(userID string, in CreatePrayerInput) (*model.Prayer, error) {
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	prayer := &model.Prayer{
		Title:       in.Title,
		Description: in.Description,
		Intention:   in.Intention,
		TargetCount: in.TargetCount,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      model.PrayerActive,
		IsPublic:    isPublic,
		CreatedBy:   userID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prayer).Error; err != nil {
			return err
		}
		return s.StatsRepo.CreatePrayerStats(tx, prayer.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.PrayerRepo.FindByIDWithDetail(prayer.ID)
}

func (s *PrayerService) List(status model.PrayerStatus, page, limit int) ([]model.Prayer, int64, error) {
	if status != "" && !model.ValidPrayerStatus(status) {
		return nil, 0, util.ErrInvalidStatus
	}
	return s.PrayerRepo.ListPublic(status, page, limit)
}

func (s *PrayerService) GetByID(id string) (*model.Prayer, error) {
	prayer, err := s.PrayerRepo.FindByIDWithDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPrayerNotFound
		}
		return nil, err
	}
	return prayer, nil
}

// UpdatePrayerInput: nil fields are left untouched.
type UpdatePrayerInput struct {
	Title       *string
	Description *string
	Intention   *string
	TargetCount *int64
	EndDate     *time.Time
	Status      *model.PrayerStatus
	IsPublic    *bool
}

// Update is owner-only. Status moves only between the enumerated
// states and is never changed by the system itself.
func (s *PrayerService) Update(id, userID string, in UpdatePrayerInput) (*model.Prayer, error) {
	prayer, err := s.PrayerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPrayerNotFound
		}
		return nil, err
	}

	if prayer.CreatedBy != userID {
		return nil, util.ErrNotPrayerOwner
	}

	if in.Title != nil {
		prayer.Title = *in.Title
	}
	if in.Description != nil {
		prayer.Description = *in.Description
	}
	if in.Intention != nil {
		prayer.Intention = *in.Intention
	}
	if in.TargetCount != nil {
		prayer.TargetCount = *in.TargetCount
	}
	if in.EndDate != nil {
		prayer.EndDate = in.EndDate
	}
	if in.Status != nil {
		if !model.ValidPrayerStatus(*in.Status) {
			return nil, util.ErrInvalidStatus
		}
		prayer.Status = *in.Status
	}
	if in.IsPublic != nil {
		prayer.IsPublic = *in.IsPublic
	}

	if err := s.PrayerRepo.Update(prayer); err != nil {
		return nil, err
	}
	return s.PrayerRepo.FindByIDWithDetail(id)
}

func (s *PrayerService) Delete(id, userID string) error {
	prayer, err := s.PrayerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPrayerNotFound
		}
		return err
	}

	if prayer.CreatedBy != userID {
		return util.ErrNotPrayerOwner
	}

	return s.PrayerRepo.Delete(id)
}

// Participate records a contribution. The per-day upsert, both counter
// increments and the stats recomputation run inside one transaction so
// the aggregates cannot drift from the participation rows on partial
// failure.
func (s *PrayerService) Participate(userID, prayerID string, count int64) (*model.Participation, error) {
	prayer, err := s.PrayerRepo.FindByID(prayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.ParticipationCounter.WithLabelValues("not_found").Inc()
			return nil, util.ErrPrayerNotFound
		}
		return nil, err
	}

	if prayer.Status != model.PrayerActive {
		monitoring.ParticipationCounter.WithLabelValues("inactive").Inc()
		return nil, util.ErrPrayerNotActive
	}

	day := model.ParticipationDay(time.Now())
	var participation *model.Participation

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ParticipationRepo.Upsert(tx, userID, prayerID, day, count); err != nil {
			return err
		}

		if err := s.PrayerRepo.IncrementCurrentCount(tx, prayerID, count); err != nil {
			return err
		}

		// total_participations is derived from the rows, not from a
		// find-before-upsert, so two first-of-day requests merging
		// into one row cannot double count it.
		participations, err := s.ParticipationRepo.CountByUser(tx, userID)
		if err != nil {
			return err
		}

		if err := s.StatsRepo.AddUserPrayers(tx, userID, count, participations); err != nil {
			return err
		}

		if err := s.recomputeStats(tx, prayer); err != nil {
			return err
		}

		participation, err = s.ParticipationRepo.FindByUserPrayerDay(tx, userID, prayerID, day)
		return err
	})
	if err != nil {
		monitoring.ParticipationCounter.WithLabelValues("error").Inc()
		return nil, err
	}

	monitoring.ParticipationCounter.WithLabelValues("ok").Inc()
	logger.Log.Info("participation recorded",
		zap.String("prayerId", prayerID),
		zap.String("userId", userID),
		zap.Int64("count", count),
	)
	return participation, nil
}

// recomputeStats rebuilds the campaign's denormalized aggregates as a
// pure function of the participation rows visible to the transaction.
// No pre-transaction snapshot is involved, so a concurrent commit
// cannot leave the aggregates contradicting current_count.
func (s *PrayerService) recomputeStats(tx *gorm.DB, prayer *model.Prayer) error {
	participants, err := s.ParticipationRepo.CountDistinctParticipants(tx, prayer.ID)
	if err != nil {
		return err
	}

	days, err := s.ParticipationRepo.CountDistinctDays(tx, prayer.ID)
	if err != nil {
		return err
	}

	current, err := s.ParticipationRepo.SumCounts(tx, prayer.ID)
	if err != nil {
		return err
	}

	avgDaily := 0.0
	if days > 0 {
		avgDaily = float64(current) / float64(days)
	}

	return s.StatsRepo.UpdatePrayerStats(tx, prayer.ID, participants, avgDaily, model.CompletionRate(current, prayer.TargetCount))
}

// GetStats serves the stored aggregate row with its campaign summary.
func (s *PrayerService) GetStats(prayerID string) (*model.PrayerStats, *model.Prayer, error) {
	stats, err := s.StatsRepo.FindPrayerStats(prayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrPrayerStatsMissing
		}
		return nil, nil, err
	}

	prayer, err := s.PrayerRepo.FindByID(prayerID)
	if err != nil {
		return nil, nil, err
	}
	return stats, prayer, nil
}
