package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/aksara-labs/gradewise-api/internal/config"
	"github.com/aksara-labs/gradewise-api/internal/database"
	"github.com/aksara-labs/gradewise-api/internal/handler"
	"github.com/aksara-labs/gradewise-api/internal/middleware"
	"github.com/aksara-labs/gradewise-api/internal/models"
	"github.com/aksara-labs/gradewise-api/internal/repository"
	"github.com/aksara-labs/gradewise-api/internal/router"
	"github.com/aksara-labs/gradewise-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.AssessmentTemplate{},
		&models.ClassAssessment{},
		&models.AssessmentQuestion{},
		&models.RubricItem{},
		&models.GradingGroup{},
		&models.Submission{},
		&models.GradingSession{},
		&models.GradeItem{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	submissionRepo := repository.NewSubmissionRepository(db)
	sessionRepo := repository.NewGradingSessionRepository(db)
	itemRepo := repository.NewGradeItemRepository(db)
	rubricRepo := repository.NewRubricItemRepository(db)
	groupRepo := repository.NewGradingGroupRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	classifier := service.NewContextClassifier(assessmentRepo, logger)
	resolutionService := service.NewGradeResolutionService(
		submissionRepo, sessionRepo, itemRepo, rubricRepo, groupRepo,
		classifier, redisClient, cfg.ResolutionCacheTTL, logger,
	)
	groupService := service.NewGradingGroupService(groupRepo, submissionRepo, logger)

	resolutionHandler := handler.NewResolutionHandler(resolutionService, validate, logger)
	groupHandler := handler.NewGradingGroupHandler(groupService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ResolutionHandler:   resolutionHandler,
		GradingGroupHandler: groupHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
