// Package web exposes the catalog over a JSON HTTP API.
package web

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/morg/internal/logger"
	"github.com/example/morg/internal/ports/primary"
)

// Options configures a Server.
type Options struct {
	// DataDir, when set, serves photo/ and sets/ as static files.
	DataDir string

	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Server routes HTTP requests to the catalog services.
type Server struct {
	query    primary.CatalogQueryService
	mutation primary.CatalogMutationService
	photos   primary.PhotoService
	opts     Options
}

// NewServer creates a Server. photos may be nil.
func NewServer(query primary.CatalogQueryService, mutation primary.CatalogMutationService, photos primary.PhotoService, opts Options) *Server {
	return &Server{
		query:    query,
		mutation: mutation,
		photos:   photos,
		opts:     opts,
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(LogRequests())
	r.Use(RateLimit(s.opts.RateLimitPerSecond, s.opts.RateLimitBurst))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.opts.DataDir != "" {
		r.Static("/photo", filepath.Join(s.opts.DataDir, "photo"))
		r.Static("/sets", filepath.Join(s.opts.DataDir, "sets"))
	}

	api := r.Group("/api")
	api.Use(HTTPActor())
	{
		api.GET("/garments", s.listGarments)
		api.GET("/garments/lookup", s.findGarmentByName)
		api.GET("/garments/names", s.listGarmentNames)
		api.GET("/garments/colors", s.listColors)
		api.GET("/garments/next-id", s.nextGarmentID)
		api.GET("/garments/:id", s.getGarment)
		api.POST("/garments", s.createGarment)
		api.PUT("/garments/rate", s.rateGarment)
		api.PUT("/garments/clear", s.clearGarment)
		api.PUT("/garments/identity", s.editGarment)
		api.DELETE("/garments/:id", s.deleteGarment)

		api.GET("/sets", s.listSets)
		api.GET("/sets/dates", s.listSetDates)
		api.GET("/sets/next-id", s.nextSetID)
		api.GET("/sets/:date", s.getSet)
		api.POST("/sets", s.createSet)
		api.PUT("/sets/:date/rate", s.rateSet)
		api.PUT("/sets/:date", s.editSet)

		api.GET("/summary", s.summary)
		api.GET("/changes", s.recentChanges)

		if s.photos != nil {
			api.GET("/photos", s.photoStatus)
		}
	}

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("http server shutting down", "addr", addr)
		return srv.Shutdown(shutdownCtx)
	}
}
