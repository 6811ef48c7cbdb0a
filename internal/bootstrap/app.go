package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shekharkalshetti/interview-pal-backend/internal/interviews"
	"github.com/shekharkalshetti/interview-pal-backend/internal/llm"
	"github.com/shekharkalshetti/interview-pal-backend/internal/resumes"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/config"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/server"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/storage/db"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/storage/object"
	localstore "github.com/shekharkalshetti/interview-pal-backend/internal/shared/storage/object/local"
	s3store "github.com/shekharkalshetti/interview-pal-backend/internal/shared/storage/object/s3"
)

// App holds the wired application.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	ResumesRepo      resumes.Repo
	ResumesService   *resumes.Service
	InterviewService *interviews.Service
	ResumeHandler    *resumes.Handler
	InterviewHandler *interviews.Handler
}

// Build prepares all dependencies and the router. In dev an absent or
// unreachable database degrades to in-memory repositories; production fails
// instead.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := llm.NewHTTPClient(cfg.LLMAPIURL, cfg.LLMModel, cfg.LLMTimeout)
	if err != nil {
		return nil, err
	}

	var resumeRepo resumes.Repo
	if sqlDB != nil {
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{
		Repo:  resumeRepo,
		Store: store,
	}
	interviewSvc := &interviews.Service{
		Resumes: resumeSvc,
		LLM:     llmClient,
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		ResumesRepo:      resumeRepo,
		ResumesService:   resumeSvc,
		InterviewService: interviewSvc,
		ResumeHandler:    resumes.NewHandler(resumeSvc),
		InterviewHandler: interviews.NewHandler(interviewSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		ResumeHandler:    app.ResumeHandler,
		InterviewHandler: app.InterviewHandler,
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

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
