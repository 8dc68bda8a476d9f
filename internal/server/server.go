// Package server serves the portfolio page over HTTP with gin.
//
// The view state lives in the query string. Header controls link to
// /ui/<action>, which applies the controller operation and redirects back to
// the page for the new state, so the page works without client scripts.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hcconfig "github.com/tavsec/gin-healthcheck/config"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/visits"
)

// Options wires a Server.
type Options struct {
	Store    *content.Store
	Renderer *render.Renderer
	// Tracker records visits; nil disables tracking and the admin API.
	Tracker *visits.Tracker
	// AdminToken guards /admin. A random token is generated when empty.
	AdminToken string
	ImagesDir  string
	StaticDir  string
	// Now is the clock used for the footer year; defaults to time.Now.
	Now func() time.Time
}

// Server holds the router and its dependencies.
type Server struct {
	store      *content.Store
	renderer   *render.Renderer
	tracker    *visits.Tracker
	adminToken string
	now        func() time.Time
	router     *gin.Engine
}

// New builds the router.
func New(opts Options) (*Server, error) {
	s := &Server{
		store:      opts.Store,
		renderer:   opts.Renderer,
		tracker:    opts.Tracker,
		adminToken: opts.AdminToken,
		now:        opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.tracker != nil && s.adminToken == "" {
		token, err := generateToken()
		if err != nil {
			return nil, err
		}
		s.adminToken = token
		if gin.Mode() == gin.DebugMode {
			log.Info().Str("token", token).Msg("Admin token (dev only)")
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID())
	if s.tracker != nil {
		r.Use(trackVisits(s.tracker))
	}

	var hc []checks.Check
	if s.tracker != nil {
		hc = append(hc, checks.SqlCheck{Sql: s.tracker.DB()})
	}
	healthcheck.New(r, hcconfig.DefaultConfig(), hc)

	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/", s.page)
	r.GET("/ui/:action", s.dispatch)
	r.GET("/sections/:id", s.section)

	if s.tracker != nil {
		s.adminRoutes(r)
	}

	s.router = r
	return s, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Server stopped gracefully")
	return nil
}
