package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"employee-api/internal/core/config"
	"employee-api/internal/core/database"
	"employee-api/internal/core/logger"
	"employee-api/internal/core/server"
	"employee-api/internal/repo"
	"employee-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.Rotate.Enable,
		Filename:   cfg.Log.Rotate.Filename,
		MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
		MaxBackups: cfg.Log.Rotate.MaxBackups,
		MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
		Compress:   cfg.Log.Rotate.Compress,
	})
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	// 存储（失败会直接 Fatal）
	db, closeDB := mustOpenMongo(cfg, log)
	defer closeDB()
	log.Info("mongo connected", zap.String("database", cfg.Mongo.Database))

	// 启动建表：集合 + 校验器 + employee_id 唯一索引（幂等）
	employees := repo.NewEmployeeRepo(db)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := employees.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatal("ensure schema failed", zap.Error(err))
		}
		cancel()
		log.Info("schema ensured")
	}

	// 路由
	r := router.NewAPIEngine(log, employees, cfg.Policy)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("employee api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("employees", baseURL+"/employees"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("employee api start FAILED", zap.Error(err))
		}
	}()
	log.Info("employee api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("employee api stopped gracefully")
}

func mustOpenMongo(cfg *config.Config, l *zap.Logger) (*mongo.Database, func()) {
	db, cleanup, err := database.NewMongo(database.Opts{
		URI:               cfg.Mongo.URI,
		Database:          cfg.Mongo.Database,
		MaxPoolSize:       cfg.Mongo.MaxPoolSize,
		ConnectTimeoutSec: cfg.Mongo.ConnectTimeoutSec,
	})
	if err != nil {
		l.Fatal("mongo open", zap.Error(err))
	}
	return db, cleanup
}
