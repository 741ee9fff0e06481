package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rdsafin/mathquiz/internal/config"
	"github.com/rdsafin/mathquiz/internal/delivery/terminal"
	"github.com/rdsafin/mathquiz/internal/logger"
	"github.com/rdsafin/mathquiz/internal/repository"
	"github.com/rdsafin/mathquiz/internal/service"
	"github.com/rdsafin/mathquiz/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories. A broken question bank fails fast here.
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsPath)
	if err != nil {
		zl.Fatal("failed to load question bank", zap.Error(err))
	}

	resultRepo := repository.NewResultRepository(cfg.Results.CSVPath)

	historyRepo, err := repository.NewHistoryRepository(cfg.Results.HistoryDBPath)
	if err != nil {
		zl.Fatal("failed to open history database", zap.Error(err))
	}
	defer historyRepo.Close()

	sessionService := service.NewSessionService(
		questionRepo,
		resultRepo,
		service.NewQuestionSelector(),
		service.NewAnswerValidator(),
		cfg.Quiz.Lives,
		cfg.Quiz.Length,
	)
	leaderboardService := service.NewLeaderboardService(historyRepo)

	handler := terminal.NewHandler(
		os.Stdin,
		os.Stdout,
		zl,
		sessionService,
		leaderboardService,
		historyRepo,
		storage.NewSessionStore(),
		cfg.Quiz.LeaderboardSize,
	)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("terminal handler failed", zap.Error(err))
	}
}
