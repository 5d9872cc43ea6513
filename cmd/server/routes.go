package main

import (
	"context"
	"net/http"
	"time"

	"github.com/averyhall/classroom-finder-go/internal/agent"
	"github.com/averyhall/classroom-finder-go/internal/config"
	"github.com/averyhall/classroom-finder-go/internal/contacts"
	"github.com/averyhall/classroom-finder-go/internal/logger"
	"github.com/averyhall/classroom-finder-go/internal/maps"
	"github.com/averyhall/classroom-finder-go/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// chatMessage is one turn of the conversation sent by the frontend.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the /api/chat payload.
type chatRequest struct {
	Messages []chatMessage `json:"messages" binding:"required"`
}

// chatResponse mirrors the original agent contract.
type chatResponse struct {
	Message    string `json:"message"`
	Classrooms any    `json:"classrooms,omitempty"`
	ToolCalled bool   `json:"toolCalled"`
}

// setupRoutes configures all HTTP routes
func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	ag *agent.Agent,
	directory *contacts.Directory,
	mapsClient *maps.Client,
	registry *prometheus.Registry,
	m *metrics.Metrics,
	log *logger.Logger,
) {
	// Base endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to agent!"})
	})

	// Liveness probe - only checks that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe - checks upstream dependencies concurrently
	router.GET("/readyz", func(c *gin.Context) {
		checkCtx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		g, checkCtx := errgroup.WithContext(checkCtx)
		g.Go(func() error {
			return headCheck(checkCtx, cfg.BackendURL)
		})
		if mapsClient.Enabled() {
			g.Go(func() error {
				return headCheck(checkCtx, cfg.MapsBaseURL)
			})
		}

		if err := g.Wait(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"contacts": directory.Len(),
		})
	})

	// Prometheus metrics, optionally behind basic auth
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}

	// Chat endpoint, called by the backend with authorization
	router.POST("/api/chat", authMiddleware(cfg.AgentToken), chatHandler(ag, m, log))
}

// chatHandler processes one conversation turn through the agent.
func chatHandler(ag *agent.Agent, m *metrics.Metrics, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "messages field is required"})
			return
		}

		text := latestUserMessage(req.Messages)
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no user message found"})
			return
		}

		entry := log.WithRequestID(c.GetString(requestIDKey))

		start := time.Now()
		result := ag.Chat(c.Request.Context(), text)
		if m != nil {
			m.ChatDurationSeconds.Observe(time.Since(start).Seconds())
		}

		entry.WithField("tool", result.Tool).
			WithField("tool_called", result.ToolCalled).
			Info("Chat turn processed")

		resp := chatResponse{
			Message:    result.Message,
			ToolCalled: result.ToolCalled,
		}
		if len(result.Classrooms) > 0 {
			resp.Classrooms = result.Classrooms
		}
		c.JSON(http.StatusOK, resp)
	}
}

// headCheck verifies a dependency answers HTTP at all; any response counts.
func headCheck(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// latestUserMessage returns the content of the most recent user turn.
func latestUserMessage(messages []chatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
