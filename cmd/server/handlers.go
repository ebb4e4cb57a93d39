package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"turtle-feral-sim/internal/config"
	"turtle-feral-sim/internal/engine"
	"turtle-feral-sim/internal/logger"
)

type server struct {
	configDir     string
	maxIterations int
}

type exportRequest struct {
	Shares []config.Share `json:"shares" binding:"required,min=1"`
}

type importRequest struct {
	Data string `json:"data" binding:"required"`
}

func newRouter(s *server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/", s.index)
	api := router.Group("/api")
	{
		api.GET("/presets", s.presets)
		api.GET("/config", s.loadConfig)
		api.PUT("/config", s.saveConfig)
		api.GET("/config/default", s.defaultConfig)
		api.GET("/config/fields", s.fieldIDs)
		api.POST("/config/export", s.exportConfig)
		api.POST("/config/import", s.importConfig)
		api.POST("/simulate", s.simulate)
		api.POST("/statweights", s.statWeights)
	}
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func (s *server) index(c *gin.Context) {
	data, err := content.ReadFile("static/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "missing index.html")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

func (s *server) presets(c *gin.Context) {
	c.JSON(http.StatusOK, config.BossPresets)
}

func (s *server) defaultConfig(c *gin.Context) {
	c.JSON(http.StatusOK, config.Defaults())
}

func (s *server) fieldIDs(c *gin.Context) {
	c.JSON(http.StatusOK, config.FieldIDs())
}

func (s *server) loadConfig(c *gin.Context) {
	cfg, err := config.LoadConfig(s.configDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *server) saveConfig(c *gin.Context) {
	cfg, ok := s.bindConfig(c)
	if !ok {
		return
	}
	if err := config.SaveConfig(s.configDir, cfg); err != nil {
		logger.Error("save config", "dir", s.configDir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// bindConfig decodes a SimulationConfig over the defaults and validates it.
func (s *server) bindConfig(c *gin.Context) (config.SimulationConfig, bool) {
	cfg := config.Defaults()
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cfg, false
	}
	if s.maxIterations > 0 && cfg.Simulation.Iterations > s.maxIterations {
		cfg.Simulation.Iterations = s.maxIterations
	}
	return cfg, true
}

func (s *server) simulate(c *gin.Context) {
	cfg, ok := s.bindConfig(c)
	if !ok {
		return
	}
	keepLogs := c.Query("log") != "false"

	start := time.Now()
	agg, err := engine.RunMany(c.Request.Context(), cfg, engine.RunOptions{KeepLogs: keepLogs})
	if err != nil {
		s.fail(c, "simulate", err)
		return
	}
	logger.Info("simulation finished",
		"iterations", agg.Iterations,
		"mean_dps", agg.MeanDPS,
		"elapsed", time.Since(start))
	c.JSON(http.StatusOK, agg)
}

func (s *server) statWeights(c *gin.Context) {
	cfg, ok := s.bindConfig(c)
	if !ok {
		return
	}
	res, err := engine.StatWeights(c.Request.Context(), cfg, nil)
	if err != nil {
		s.fail(c, "stat weights", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *server) exportConfig(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := config.Export(req.Shares...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (s *server) importConfig(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shares, err := config.Import(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shares": shares})
}

func (s *server) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, engine.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case c.Request.Context().Err() != nil:
		logger.Warning(op+" aborted", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.Error(op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
