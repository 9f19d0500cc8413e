// Package server exposes the aggregation pipeline over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/user/scanreport/pkg/engine"
	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/render"
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/reporter"
	"github.com/user/scanreport/pkg/source"
)

const maxBodyBytes = 64 << 20

// Server serves aggregation requests.
type Server struct {
	pipeline   *engine.Pipeline
	registry   *reporter.Registry
	translator render.Translator
	lang       report.Language
	format     string
	log        *logrus.Entry
}

// New creates a server. lang and format are used when a request does not name them.
func New(pipeline *engine.Pipeline, registry *reporter.Registry, translator render.Translator, lang report.Language, format string) *Server {
	return &Server{
		pipeline:   pipeline,
		registry:   registry,
		translator: translator,
		lang:       lang,
		format:     format,
		log:        logger.For("server"),
	}
}

// Handler builds the gin router.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.healthHandler)
	v1 := r.Group("/v1")
	v1.GET("/modules", s.modulesHandler)
	v1.POST("/reports", s.reportsHandler)
	return r
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:           addr,
		Handler:        s.Handler(),
		ReadTimeout:    30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		s.log.WithFields(logrus.Fields{
			"method":   ctx.Request.Method,
			"path":     ctx.Request.URL.Path,
			"status":   ctx.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("Request served")
	}
}

func (s *Server) healthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) modulesHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.registry.Describe())
}

func (s *Server) reportsHandler(ctx *gin.Context) {
	lang := s.lang
	if q := ctx.Query("lang"); q != "" {
		parsed, err := report.ParseLanguage(q)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		lang = parsed
	}

	format := ctx.DefaultQuery("format", s.format)
	renderer, err := render.For(format, s.translator)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	results, err := source.Decode(body)
	if err != nil {
		s.log.WithError(err).Debug("Invalid task results")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.pipeline.Run(ctx.Request.Context(), results, lang)
	if err != nil {
		s.log.WithError(err).Error("Aggregation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, result); err != nil {
		s.log.WithError(err).Error("Rendering failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}
	ctx.Header("X-Run-ID", result.RunID.String())
	ctx.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
}
