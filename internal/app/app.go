package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/internal/controller"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/service"
	"sofreh_salawat_backend/pkg/configwatcher"
	"sofreh_salawat_backend/pkg/database"
	"sofreh_salawat_backend/pkg/logger"
	"sofreh_salawat_backend/pkg/monitoring"
	"sofreh_salawat_backend/pkg/security"
	"sofreh_salawat_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	prayer        *repository.PrayerRepository
	participation *repository.ParticipationRepository
	stats         *repository.StatsRepository
	content       *repository.ContentRepository
}

type services struct {
	auth    *service.AuthService
	prayer  *service.PrayerService
	user    *service.UserService
	content *service.ContentService
	storage *service.StorageService
}

type controllers struct {
	auth    *controller.AuthController
	prayer  *controller.PrayerController
	user    *controller.UserController
	content *controller.ContentController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		prayer:        repository.NewPrayerRepository(db),
		participation: repository.NewParticipationRepository(db),
		stats:         repository.NewStatsRepository(db),
		content:       repository.NewContentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.stats, db, cfg)
	s.prayer = service.NewPrayerService(repos.prayer, repos.participation, repos.stats, db)
	s.user = service.NewUserService(repos.user, repos.stats, repos.participation)
	s.content = service.NewContentService(repos.content, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth, s.user),
		prayer:  controller.NewPrayerController(s.prayer),
		user:    controller.NewUserController(s.user),
		content: controller.NewContentController(s.content, s.storage),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	gin.SetMode(ginMode(cfg.Server.Mode))

	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Release builds migrate only when asked to.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		database.SeedDefaultContent(db)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Content listing degrades to the database when redis is down.
		logger.Log.Warn("Failed to initialize redis, content cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("sofreh-salawat", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded")
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
