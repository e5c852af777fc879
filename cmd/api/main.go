package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"voice-worklog/config"
	_ "voice-worklog/docs" // Swagger docs
	"voice-worklog/internal/httpserver"
	"voice-worklog/internal/middleware"
	"voice-worklog/internal/parser"
	jiraRepo "voice-worklog/internal/worklog/repository/jira"
	"voice-worklog/internal/worklog/repository/postgre"
	"voice-worklog/internal/worklog/usecase"
	"voice-worklog/pkg/datemath"
	"voice-worklog/pkg/jira"
	"voice-worklog/pkg/log"
)

// @title       Voice Worklog API
// @description Turns spoken Brazilian Portuguese work reports into Jira worklogs.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Worklog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres: user projects and favorites
	if cfg.Postgres.DSN == "" {
		logger.Error(ctx, "postgres.dsn (or DATABASE_URL) is required")
		return
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Invalid Postgres DSN: ", err)
		return
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer pool.Close()

	userRepo := postgre.New(pool, logger)
	if cfg.Postgres.Migrate {
		if err := userRepo.Migrate(ctx); err != nil {
			logger.Error(ctx, "Failed to migrate schema: ", err)
			return
		}
		logger.Info(ctx, "Postgres schema up to date")
	}

	// 4. Jira: ticket search and worklog submission
	jiraClient, err := jira.New(cfg.Jira.BaseURL, cfg.Jira.Email, cfg.Jira.APIToken)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Jira client: ", err)
		return
	}
	jiraClient.WithTimeout(cfg.Jira.Timeout).WithRateLimit(cfg.Jira.RequestsPerSecond)

	ticketRepo := jiraRepo.New(jiraClient, jiraRepo.Config{
		MaxResults:   cfg.Jira.MaxResults,
		ClosedStatus: cfg.Jira.ClosedStatus,
		CacheTTL:     cfg.Jira.SearchCacheTTL,
		CacheSize:    cfg.Jira.SearchCacheSize,
	}, logger)

	// 5. Parser
	var dict *parser.Dictionary
	if cfg.Parser.DictionaryPath != "" {
		dict, err = parser.LoadDictionary(cfg.Parser.DictionaryPath)
		if err != nil {
			logger.Error(ctx, "Failed to load dictionary: ", err)
			return
		}
		logger.Infof(ctx, "Dictionary loaded from %s", cfg.Parser.DictionaryPath)
	}

	var opts []parser.Option
	if cfg.Parser.LegacyDates {
		dates, dtErr := datemath.NewParser(cfg.Parser.Timezone)
		if dtErr != nil {
			logger.Error(ctx, "Failed to initialize date parser: ", dtErr)
			return
		}
		opts = append(opts, parser.WithLegacyDates(dates, nil))
		logger.Info(ctx, "Legacy date phrases enabled")
	}
	p := parser.New(dict, opts...)

	// 6. Worklog UseCase
	loc, err := time.LoadLocation(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		loc = time.UTC
	}
	worklogUC := usecase.New(logger, p, userRepo, ticketRepo, ticketRepo, usecase.Config{
		Location: loc,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		DB:             pool,
		WorklogUseCase: worklogUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
