package service

import (
	"errors"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo          *repository.UserRepository
	StatsRepo         *repository.StatsRepository
	ParticipationRepo *repository.ParticipationRepository
}

func NewUserService(userRepo *repository.UserRepository, statsRepo *repository.StatsRepository, participationRepo *repository.ParticipationRepository) *UserService {
	return &UserService{
		UserRepo:          userRepo,
		StatsRepo:         statsRepo,
		ParticipationRepo: participationRepo,
	}
}

func (s *UserService) GetStats(userID string) (*model.UserStats, error) {
	stats, err := s.StatsRepo.FindUserStats(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserStatsMissing
		}
		return nil, err
	}
	return stats, nil
}

func (s *UserService) GetParticipations(userID string, page, limit int) ([]model.Participation, int64, error) {
	return s.ParticipationRepo.ListByUser(userID, page, limit)
}

func (s *UserService) ListUsers(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit)
}

func (s *UserService) DisableUser(id string) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	return s.UserRepo.SetActive(id, false)
}
