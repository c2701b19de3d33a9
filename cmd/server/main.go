package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopadmin/internal/config"
	mydb "shopadmin/internal/db"
	"shopadmin/internal/logger"
	"shopadmin/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	if cfg.InsecureSecret() {
		lg.Warn("SESSION_SECRET is not set, using the development secret")
	}

	db, err := mydb.Open(cfg.DSN)
	if err != nil {
		lg.Fatal("open database", zap.Error(err))
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		lg.Fatal("create upload dir", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	r, err := server.New(cfg, db, lg)
	if err != nil {
		lg.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("products", cfg.PublicBaseURL+cfg.ProductsPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
}
