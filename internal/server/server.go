// Package server exposes workbook upload and sheet views over HTTP.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sheetcard/sheetcard-go/internal/config"
	"github.com/sheetcard/sheetcard-go/internal/logging"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
)

// Server represents the sheetcard web server.
type Server struct {
	router *gin.Engine
	store  *Store
	cfg    *config.Config
	log    *logging.Logger
}

// NewServer creates a server with its routes registered.
func NewServer(cfg *config.Config, logger *logging.Logger) *Server {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	s := &Server{
		router: gin.New(),
		store:  NewStore(cfg.Server.StoreTTL, cfg.Server.MaxWorkbooks),
		cfg:    cfg,
		log:    logger.With("server"),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.router.MaxMultipartMemory = cfg.Limits.MaxFileSize
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api/workbooks")
	{
		api.POST("", s.handleUpload)
		api.GET("/:id", s.handleGetWorkbook)
		api.DELETE("/:id", s.handleDeleteWorkbook)
		api.GET("/:id/sheets/:sheet", s.handleViewSheet)
	}
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.sweepLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) sweepLoop(ctx context.Context) {
	interval := s.cfg.Server.StoreTTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.store.Sweep(); n > 0 {
				s.log.Debug("expired %d workbooks", n)
			}
		}
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError maps err to a status code by its kind.
func (s *Server) writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	var maxBytes *http.MaxBytesError
	switch {
	case stderrors.Is(err, sheetcard.ErrSheetNotFound), stderrors.Is(err, errWorkbookNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case stderrors.As(err, &maxBytes):
		status, code = http.StatusRequestEntityTooLarge, string(errors.KindSizeLimit)
	default:
		switch kind := errors.KindOf(err); kind {
		case errors.KindSizeLimit:
			status, code = http.StatusRequestEntityTooLarge, string(kind)
		case errors.KindParse:
			status, code = http.StatusUnprocessableEntity, string(kind)
		case errors.KindConfig:
			status, code = http.StatusBadRequest, string(kind)
		}
	}
	if status == http.StatusInternalServerError {
		s.log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error(), Code: code})
}
