package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/careers"
	"careerpath-backend/internal/interviews"
	"careerpath-backend/internal/matching"
	"careerpath-backend/internal/nlg"
	"careerpath-backend/internal/nlg/gemini"
	"careerpath-backend/internal/nlg/openrouter"
	"careerpath-backend/internal/questions"
	"careerpath-backend/internal/services/health"
	"careerpath-backend/internal/shared/config"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/server/middleware"
	"careerpath-backend/internal/shared/server/respond"
	"careerpath-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	catalog, err := questions.LoadCatalog()
	if err != nil {
		log.Fatalf("load question catalog: %v", err)
	}
	resolver := questions.NewResolver(catalog)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			conn.Close()
		} else {
			sqlDB = conn
		}
	}

	var interviewRepo interviews.Repo
	var careerRepo careers.Repo
	var resultRepo matching.Repo
	if sqlDB != nil {
		interviewRepo = &interviews.PGRepo{DB: sqlDB}
		careerRepo = &careers.PGRepo{DB: sqlDB}
		resultRepo = &matching.PGRepo{DB: sqlDB}
	} else {
		interviewRepo = interviews.NewMemoryRepo()
		careerRepo = careers.NewMemoryRepo()
		resultRepo = matching.NewMemoryRepo()
	}

	interviewSvc := &interviews.Service{Repo: interviewRepo, Resolver: resolver}
	matchingSvc := &matching.Service{
		Results:    resultRepo,
		Interviews: interviewRepo,
		Careers:    careerRepo,
		Explainer:  &matching.Explainer{NLG: buildNLGClient(cfg)},
	}

	healthSvc := health.NewService(sqlDB)
	interviewHandler := interviews.NewHandler(interviewSvc)
	careerHandler := careers.NewHandler(careerRepo)
	matchingHandler := matching.NewHandler(matchingSvc, interviewRepo)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status(c.Request.Context()))
	})

	authed := api.Group("")
	authed.Use(middleware.Identity(cfg.Env))
	interviewHandler.RegisterRoutes(authed)
	careerHandler.RegisterRoutes(authed)
	matchingHandler.RegisterRoutes(authed)

	return r
}

func buildNLGClient(cfg config.Config) nlg.Client {
	switch cfg.NLGProvider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.NLGModel)
		if err != nil {
			log.Printf("gemini client unavailable, narratives fall back to template: %v", err)
			return nlg.PlaceholderClient{}
		}
		return client
	case "openrouter":
		client, err := openrouter.NewClient(cfg.OpenRouterKey, cfg.NLGModel)
		if err != nil {
			log.Printf("openrouter client unavailable, narratives fall back to template: %v", err)
			return nlg.PlaceholderClient{}
		}
		return client
	default:
		log.Printf("unknown NLG provider %q, narratives fall back to template", cfg.NLGProvider)
		return nlg.PlaceholderClient{}
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
