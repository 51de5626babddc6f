package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"synnovator.backend/internal/config"
	"synnovator.backend/internal/infrastructure/jobs"
	"synnovator.backend/internal/infrastructure/repositories"
	"synnovator.backend/internal/interfaces/http/handlers"
	"synnovator.backend/internal/interfaces/http/middleware"
	"synnovator.backend/internal/usecases"
	"synnovator.backend/pkg/jwt"
	"synnovator.backend/pkg/logger"
	"synnovator.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	hackathonRepo := repositories.NewHackathonRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	registrationRepo := repositories.NewRegistrationRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	judgeScoreRepo := repositories.NewJudgeScoreRepository(db)
	ruleRepo := repositories.NewRuleRepository(db)
	violationRepo := repositories.NewViolationRepository(db)
	questRepo := repositories.NewQuestRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	advancementRepo := repositories.NewAdvancementRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	hackathonUsecase := usecases.NewHackathonUsecase(hackathonRepo)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, hackathonRepo, userRepo)
	registrationUsecase := usecases.NewRegistrationUsecase(registrationRepo, hackathonRepo, teamRepo, notificationRepo)
	eligibilityUsecase := usecases.NewEligibilityUsecase(hackathonRepo, registrationRepo, submissionRepo)
	scoringUsecase := usecases.NewScoringUsecase(submissionRepo, judgeScoreRepo, teamRepo, true)
	submissionUsecase := usecases.NewSubmissionUsecase(submissionRepo, teamRepo, questRepo, userRepo, notificationRepo, eligibilityUsecase, scoringUsecase)
	complianceUsecase := usecases.NewComplianceUsecase(teamRepo, ruleRepo, violationRepo, submissionRepo, notificationRepo)
	questUsecase := usecases.NewQuestUsecase(questRepo, hackathonRepo)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	advancementUsecase := usecases.NewAdvancementUsecase(teamRepo, advancementRepo, notificationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	hackathonHandler := handlers.NewHackathonHandler(hackathonUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUsecase)
	submissionHandler := handlers.NewSubmissionHandler(submissionUsecase, eligibilityUsecase)
	scoringHandler := handlers.NewScoringHandler(scoringUsecase)
	complianceHandler := handlers.NewComplianceHandler(complianceUsecase)
	questHandler := handlers.NewQuestHandler(questUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	advancementHandler := handlers.NewAdvancementHandler(advancementUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewComplianceSweepJob(hackathonRepo, teamRepo, complianceUsecase, cfg.Compliance.SweepInterval)
	if cfg.Compliance.Enabled {
		go sweepJob.Start(ctx)
	}

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		hackathonHandler:    hackathonHandler,
		teamHandler:         teamHandler,
		registrationHandler: registrationHandler,
		submissionHandler:   submissionHandler,
		scoringHandler:      scoringHandler,
		complianceHandler:   complianceHandler,
		questHandler:        questHandler,
		notificationHandler: notificationHandler,
		advancementHandler:  advancementHandler,
		authMiddleware:      authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if cfg.Compliance.Enabled {
			sweepJob.Stop()
		}
		cancel()
	}()

	// Start server
	log.Printf("🚀 Synnovator Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
