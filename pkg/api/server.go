package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// Server exposes the roster boundary operations over HTTP
type Server struct {
	store   db.Store
	catalog *rules.Catalog
	cfg     *config.Config
	logger  *zap.Logger
}

// NewServer creates an API server over the given store and catalog
func NewServer(store db.Store, catalog *rules.Catalog, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
}

// Router builds the gin engine with all roster routes registered
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		periods := v1.Group("/periods/:period")
		periods.GET("/summary", s.handleInputSummary)
		periods.GET("/state", s.handleGetState)
		periods.GET("/locks", s.handleGetLocks)
		periods.PUT("/locks/:slotID", s.handleUpsertLock)
		periods.DELETE("/locks/:slotID", s.handleDeleteLock)
		periods.POST("/preview", s.handlePreview)
		periods.POST("/run", s.handleRun)
		periods.GET("/roster.xlsx", s.handleExport)
	}

	return router
}

// Run starts the HTTP server on the configured address
func (s *Server) Run() error {
	s.logger.Info("Starting API server", zap.String("addr", s.cfg.HTTPAddr))
	return s.Router().Run(s.cfg.HTTPAddr)
}
