package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spacesedan/mooddecode/config"
	"github.com/spacesedan/mooddecode/internal/models"
	"github.com/spacesedan/mooddecode/internal/monitoring"
)

const API_NAME = "MoodDecode NLP API"

const (
	RouteAnalyzeMood  = "/analyze_mood"
	RouteDetectCrisis = "/detect_crisis"
	RouteSummarize    = "/summarize"
)

// Request bodies may hold MaxTextLength runes of at most 4 bytes each,
// plus this much for the JSON envelope and escapes.
const BODY_OVERHEAD_BYTES = 1024

// Analyzer is the gateway's inference surface, implemented by
// analysis.Service.
type Analyzer interface {
	AnalyzeMood(ctx context.Context, text string) (models.MoodResult, error)
	DetectCrisis(ctx context.Context, text string) (models.CrisisResult, error)
	Summarize(ctx context.Context, text string) (models.SummaryResult, error)
}

type Server struct {
	analyzer Analyzer
	health   *monitoring.UpstreamHealth
	router   *gin.Engine
}

func New(cfg *config.Config, analyzer Analyzer, health *monitoring.UpstreamHealth) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		analyzer: analyzer,
		health:   health,
		router:   gin.New(),
	}

	s.router.HandleMethodNotAllowed = true
	s.router.Use(
		requestID(),
		requestLogger(),
		requestMetrics(),
		gin.CustomRecovery(recoverJSON),
		cors.New(corsConfig(cfg.AllowOrigins)),
		limitBody(maxBodyBytes(cfg.MaxTextLength)),
	)

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST(RouteAnalyzeMood, s.handleAnalyzeMood)
	s.router.POST(RouteDetectCrisis, s.handleDetectCrisis)
	s.router.POST(RouteSummarize, s.handleSummarize)

	s.router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "not found: "+c.Request.URL.Path)
	})
	s.router.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, "method not allowed: "+c.Request.Method)
	})
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = origins
	return cc
}

func maxBodyBytes(maxTextLength int) int64 {
	if maxTextLength <= 0 {
		return 0
	}
	return int64(maxTextLength)*4 + BODY_OVERHEAD_BYTES
}

func (s *Server) Handler() http.Handler {
	return s.router
}
