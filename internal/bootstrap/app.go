package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"applyai-backend/internal/llm"
	anthropicprovider "applyai-backend/internal/llm/anthropic"
	"applyai-backend/internal/qabank"
	"applyai-backend/internal/resumes"
	"applyai-backend/internal/shared/config"
	"applyai-backend/internal/shared/server"
	"applyai-backend/internal/shared/storage/db"
)

// App holds shared dependencies wired from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	LLM    llm.Client

	ResumesRepo    resumes.Repo
	QARepo         qabank.Repo
	ResumesService *resumes.Service
	QAService      *qabank.Service
	ResumesHandler *resumes.Handler
	QAHandler      *qabank.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		LLM:    llmClient,
	}

	if sqlDB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		app.QARepo = &qabank.PGRepo{DB: sqlDB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.QARepo = qabank.NewMemoryRepo()
	}

	app.ResumesService = &resumes.Service{LLM: llmClient, Repo: app.ResumesRepo}
	app.QAService = &qabank.Service{Repo: app.QARepo}
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.QAHandler = qabank.NewHandler(app.QAService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		DB:            sqlDB,
		ResumeHandler: app.ResumesHandler,
		QAHandler:     app.QAHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.AnthropicAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: ANTHROPIC_API_KEY empty; resume extraction disabled")
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	return anthropicprovider.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
