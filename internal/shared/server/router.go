package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"glowcheck-backend/internal/analyses"
	googleauth "glowcheck-backend/internal/auth"
	"glowcheck-backend/internal/insight"
	insightopenai "glowcheck-backend/internal/insight/openai"
	"glowcheck-backend/internal/labels"
	"glowcheck-backend/internal/profiles"
	"glowcheck-backend/internal/scoring"
	"glowcheck-backend/internal/shared/config"
	"glowcheck-backend/internal/shared/metrics"
	"glowcheck-backend/internal/shared/server/middleware"
	"glowcheck-backend/internal/shared/server/respond"
	"glowcheck-backend/internal/shared/storage/db"
	localstore "glowcheck-backend/internal/shared/storage/object/local"
	"glowcheck-backend/internal/usage"
	"glowcheck-backend/internal/users"
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
		middleware.Auth(cfg.Env),
		middleware.RateLimit(rateLimitConfig()),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)

	var profileRepo profiles.Repo
	if sqlDB != nil {
		profileRepo = &profiles.PGRepo{DB: sqlDB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
	}
	profileSvc := profiles.NewService(profileRepo)
	profileHandler := profiles.NewHandler(profileSvc)

	var labelRepo labels.Repo
	if sqlDB != nil {
		labelRepo = &labels.PGRepo{DB: sqlDB}
	} else {
		labelRepo = labels.NewMemoryRepo()
	}
	labelSvc := labels.NewService(labelRepo, store)
	labelHandler := labels.NewHandler(labelSvc)

	var usageSvc *usage.Service
	if sqlDB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB))
	} else {
		usageSvc = usage.NewService()
	}
	usageHandler := usage.NewHandler(usageSvc)

	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}
	analysisSvc := &analyses.Service{
		Repo:     analysisRepo,
		Usage:    usageSvc,
		Profiles: profileSvc,
		Labels:   labelSvc,
		Insight:  insight.WithRetry(insightClient(cfg)),
	}
	analysisHandler := analyses.NewHandler(analysisSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "scoringVersion": cfg.ScoringVersion})
	})
	api.GET("/ingredients/:name", ingredientLookupHandler)
	googleAuthSvc.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	profileHandler.RegisterRoutes(api)
	labelHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// insightClient selects the narration backend. Anything other than a
// configured OpenAI client degrades to the placeholder, which keeps the
// deterministic scores flowing without prose.
func insightClient(cfg config.Config) insight.Client {
	if strings.EqualFold(cfg.InsightProvider, "openai") {
		client, err := insightopenai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.InsightModel)
		if err != nil {
			log.Printf("insight client unavailable, using placeholder: %v", err)
			return insight.PlaceholderClient{}
		}
		return client
	}
	return insight.PlaceholderClient{}
}

// ingredientLookupHandler scores a single ingredient without a profile.
func ingredientLookupHandler(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "ingredient name is required", nil)
		return
	}
	score := scoring.ScoreIngredient(name, nil)
	respond.JSON(c, http.StatusOK, score)
}

func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"analyses": {Rate: rate.Limit(1), Burst: 5},
			"uploads":  {Rate: rate.Limit(0.5), Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method != http.MethodPost {
				return ""
			}
			switch c.FullPath() {
			case "/api/v1/analyses":
				return "analyses"
			case "/api/v1/labels":
				return "uploads"
			}
			return ""
		},
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
