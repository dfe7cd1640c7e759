// Package api wires the HTTP surface of the Hellenika server.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hellenika/hellenika/api/auth"
	"github.com/hellenika/hellenika/api/handler"
	"github.com/hellenika/hellenika/config"
	"github.com/hellenika/hellenika/database"
	"github.com/hellenika/hellenika/translate"
	"github.com/hellenika/hellenika/words"
)

// Server is the Hellenika API server.
type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	httpServer   *http.Server
	authProvider *auth.Provider
	handler      *handler.Handler
}

// New creates a new API server.
func New(cfg *config.Config, db *database.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := words.NewService(db)
	translator := translate.New(cfg.Translation)

	ginEngine := gin.Default()
	return &Server{
		cfg:       cfg,
		ginEngine: ginEngine,
		httpServer: &http.Server{
			Addr:              cfg.Listen,
			Handler:           ginEngine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		authProvider: auth.New(db, cfg.Auth),
		handler:      handler.New(svc, db, translator),
	}, nil
}

func (s *Server) setupCORS() {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = s.cfg.CORSOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	s.ginEngine.Use(cors.New(corsCfg))
}

func (s *Server) setupRoutes() {
	s.setupCORS()

	s.ginEngine.GET("/health", s.handler.Health)

	root := s.ginEngine.Group(s.cfg.APIPrefix)

	authGroup := root.Group("/auth")
	authGroup.POST("/register", s.authProvider.Register)
	authGroup.POST("/token", s.authProvider.Token)
	authGroup.GET("/users/me", s.authProvider.RequireAuth(), s.authProvider.Me)

	wordsGroup := root.Group("/words")
	wordsGroup.Use(s.authProvider.RequireAuth())
	wordsGroup.POST("", s.handler.CreateWord)
	wordsGroup.GET("", s.handler.ListWords)
	wordsGroup.GET("/pending", s.authProvider.RequireAdmin(), s.handler.PendingWords)
	wordsGroup.GET("/:id", s.handler.GetWord)
	wordsGroup.PUT("/:id", s.handler.UpdateWord)
	wordsGroup.DELETE("/:id", s.handler.DeleteWord)
	wordsGroup.POST("/:id/approve", s.handler.ApproveWord)
	wordsGroup.POST("/:id/reject", s.handler.RejectWord)

	adminGroup := root.Group("/admin")
	adminGroup.Use(s.authProvider.RequireAuth(), s.authProvider.RequireAdmin())
	adminGroup.GET("/stats", s.handler.Stats)
	adminGroup.GET("/users", s.handler.RecentUsers)
	adminGroup.GET("/content", s.handler.RecentContent)

	translationGroup := root.Group("/translation")
	translationGroup.POST("/to-greek", s.handler.TranslateToGreek)
	translationGroup.POST("/to-english", s.handler.TranslateToEnglish)
}

// Run starts the API server. It blocks until the server stops and returns
// http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Run() error {
	s.setupRoutes()
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully, waiting for in-flight requests until
// the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
