package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/mooddecode/internal/analysis"
	"github.com/spacesedan/mooddecode/internal/models"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceInfo{
		Message: API_NAME + " is running!",
		Endpoints: models.ServiceEndpoints{
			MoodAnalysis:      RouteAnalyzeMood,
			CrisisDetection:   RouteDetectCrisis,
			TextSummarization: RouteSummarize,
		},
		Status: "healthy",
	})
}

// handleHealth is a liveness probe: it answers 200 whenever the process
// serves, and reports upstream state without failing on it.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		API:      API_NAME,
		Upstream: s.health.Snapshot(),
	})
}

func (s *Server) handleAnalyzeMood(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	result, err := s.analyzer.AnalyzeMood(c.Request.Context(), req.Text)
	if err != nil {
		handleAnalysisError(c, "analyzing mood", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDetectCrisis(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	result, err := s.analyzer.DetectCrisis(c.Request.Context(), req.Text)
	if err != nil {
		handleAnalysisError(c, "detecting crisis", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleSummarize(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	result, err := s.analyzer.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		handleAnalysisError(c, "summarizing text", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindRequest(c *gin.Context) (models.AnalysisRequest, bool) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("[Server] Request body too large",
				slog.String("path", c.Request.URL.Path),
				slog.Int64("limit", tooLarge.Limit))
			writeError(c, http.StatusBadRequest, "request body too large")
			return req, false
		}
		slog.Debug("[Server] Rejected request body",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
		writeError(c, http.StatusBadRequest, "invalid request body: expected JSON object with a \"text\" field")
		return req, false
	}
	return req, true
}

func handleAnalysisError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, analysis.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, analysis.ErrUpstreamInference):
		writeError(c, http.StatusBadGateway, "error "+action+": "+err.Error())
	default:
		slog.Error("[Server] Unexpected analysis error",
			slog.String("action", action),
			slog.String("error", err.Error()))
		writeError(c, http.StatusInternalServerError, "error "+action)
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}
