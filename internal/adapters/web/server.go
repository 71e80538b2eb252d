package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"financement/internal/domain"
	"financement/internal/ports/input"
)

const (
	shutdownTimeout = 5 * time.Second
	requestIDHeader = "X-Request-ID"
)

// Server exposes panels over HTTP for widget hosts that render JSON.
type Server struct {
	panels input.PanelUseCase
	logger *log.Logger
	engine *gin.Engine
}

func NewServer(panels input.PanelUseCase, logger *log.Logger) *Server {
	s := &Server{
		panels: panels,
		logger: logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.logRequests())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/panel", s.handlePanel)
	s.engine.GET("/dataset", s.handleDataset)
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🌐 Serveur HTTP démarré", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) handlePanel(c *gin.Context) {
	size := domain.ParseSize(c.Query("size"))
	panel := s.panels.BuildPanel(c.Request.Context(), size, localeTags(c))
	c.JSON(http.StatusOK, panel)
}

func (s *Server) handleDataset(c *gin.Context) {
	dataset := s.panels.LoadDataset(c.Request.Context())
	if dataset == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dataset)
}

// localeTags prefers the lang query parameter, then Accept-Language
// ordered by quality.
func localeTags(c *gin.Context) []string {
	if lang := c.Query("lang"); lang != "" {
		return domain.SplitLocaleTags(lang)
	}
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
		s.logger.Debug("requête HTTP",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
