package main

import (
	"embed"
	"flag"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"turtle-feral-sim/internal/logger"
)

//go:embed static/index.html
var content embed.FS

func main() {
	configDir := flag.String("config-dir", "./configs", "Path to config directory")
	addr := flag.String("addr", ":8080", "Listen address (e.g., :8080)")
	maxIterations := flag.Int("max-iterations", 20000, "Upper bound on iterations per request")
	logConfig := flag.String("log-config", "./configs/logging.yaml", "Path to logging config")
	flag.Parse()

	logCfg, err := logger.LoadConfig(*logConfig)
	if err != nil {
		logger.Logger().Error("load logging config", "error", err)
		return
	}
	if err := logger.Initialize(logCfg); err != nil {
		logger.Logger().Error("initialize logging", "error", err)
		return
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(&server{configDir: *configDir, maxIterations: *maxIterations})

	listenAddr := normalizeAddr(*addr)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("server listening", "addr", listenAddr, "config_dir", *configDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "error", err)
	}
}

func normalizeAddr(addr string) string {
	if strings.Contains(addr, ":") {
		return addr
	}
	return ":" + addr
}
