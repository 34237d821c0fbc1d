package service

import (
	"testing"
	"time"

	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// One in-memory database per connection otherwise.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	db      *gorm.DB
	auth    *AuthService
	prayer  *PrayerService
	user    *UserService
	content *ContentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	prayerRepo := repository.NewPrayerRepository(db)
	participationRepo := repository.NewParticipationRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	contentRepo := repository.NewContentRepository(db)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	return &testEnv{
		db:      db,
		auth:    NewAuthService(userRepo, statsRepo, db, cfg),
		prayer:  NewPrayerService(prayerRepo, participationRepo, statsRepo, db),
		user:    NewUserService(userRepo, statsRepo, participationRepo),
		content: NewContentService(contentRepo, nil),
	}
}

func (e *testEnv) registerUser(t *testing.T, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
		Role:     model.RoleUser,
	}
	if _, err := e.auth.Register(user); err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func (e *testEnv) createPrayer(t *testing.T, userID string, target int64) *model.Prayer {
	t.Helper()

	prayer, err := e.prayer.Create(userID, CreatePrayerInput{
		Title:       "ختم صلوات برای سلامتی",
		Intention:   "سلامتی امام زمان",
		TargetCount: target,
		StartDate:   time.Now(),
	})
	if err != nil {
		t.Fatalf("create prayer: %v", err)
	}
	return prayer
}
