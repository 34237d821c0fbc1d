package service

import (
	"errors"

	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	StatsRepo *repository.StatsRepository
	DB        *gorm.DB
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, statsRepo *repository.StatsRepository, db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		StatsRepo: statsRepo,
		DB:        db,
		Cfg:       cfg,
	}
}

// Register creates the user and its stats row together and returns a
// signed token. Passwords are bcrypt-hashed before they touch the
// database.
func (s *AuthService) Register(user *model.User) (string, error) {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashedPassword)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return s.StatsRepo.CreateUserStats(tx, user.ID)
	})
	if err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// Login verifies the bcrypt hash. The same error covers unknown email
// and bad password so callers cannot probe for accounts.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", util.ErrUserDisabled
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) GetUser(userID string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile mutates only the profile fields a user may edit.
func (s *AuthService) UpdateProfile(userID, name, phone, avatar string) (*model.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
