package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shekharkalshetti/interview-pal-backend/internal/interviews"
	"github.com/shekharkalshetti/interview-pal-backend/internal/resumes"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/config"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/server/middleware"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/server/respond"
)

// Rate limit group for routes that fan out to the completion endpoint. Those
// calls are slow and expensive, so they get a much tighter bucket than plain
// CRUD.
const llmRateGroup = "LLM"

// RouterDeps carries everything NewRouter needs. Handlers are built by
// bootstrap; the router only owns middleware and route registration.
type RouterDeps struct {
	Config           config.Config
	ResumeHandler    *resumes.Handler
	InterviewHandler *interviews.Handler
	Limiter          *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				llmRateGroup: {Rate: 0.2, Burst: 3},
			},
			GroupFor: llmGroupFor,
			Limiter:  deps.Limiter,
		}),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.InterviewHandler != nil {
		deps.InterviewHandler.RegisterRoutes(api)
	}

	return r
}

func llmGroupFor(c *gin.Context) string {
	if strings.HasPrefix(c.Request.URL.Path, "/api/interview/") {
		return llmRateGroup
	}
	return ""
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
