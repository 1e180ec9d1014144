package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"launchsim/internal/auth"
	"launchsim/internal/cache"
	"launchsim/internal/config"
	cronrunner "launchsim/internal/cron"
	"launchsim/internal/db"
	"launchsim/internal/events"
	"launchsim/internal/handler"
	"launchsim/internal/logger"
	"launchsim/internal/paas"
	gormrepository "launchsim/internal/repository/gorm"
	"launchsim/internal/service"

	_ "launchsim/docs"
)

func main() {
	cfgPath := os.Getenv("LS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("LS_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	settingsSvc := &service.SystemSettingsService{Repo: store}
	if err := settingsSvc.EnsureDefaultSwitches(context.Background()); err != nil {
		logger.Warn("init default system switches failed", zap.Error(err))
	}

	cacheStore := cache.New(cfg.Cache)
	if closer, ok := cacheStore.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	leaderboardSvc := &service.LeaderboardService{
		Repo:   store,
		Cache:  cacheStore,
		TTL:    cfg.Simulator.LeaderboardCacheTTL,
		Logger: logger,
		Flags:  settingsSvc,
	}

	hub := events.NewHub(logger)
	publishers := events.Multi{hub}
	if kafkaPub := events.NewKafkaPublisher(cfg.Events.Kafka, logger); kafkaPub != nil {
		publishers = append(publishers, kafkaPub)
		defer kafkaPub.Close()
	}

	simulatorSvc := &service.SimulatorService{
		Repo:        store,
		Logger:      logger,
		Flags:       settingsSvc,
		Events:      publishers,
		Leaderboard: leaderboardSvc,
		ListLimit:   cfg.Simulator.SessionListLimit,
		NewID:       uuid.NewString,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	if verifier := initVerifier(cfg.Auth, logger); verifier != nil {
		engine.Use(auth.Middleware(verifier))
	}
	paasClient := initPaaSClient(cfg.PaaS, logger)
	engine.Use(paas.InjectClientMiddleware(paasClient))
	engine.Use(paas.WriteAuditMiddleware(paasClient, logger))

	var cachePinger handler.Pinger
	if p, ok := cacheStore.(handler.Pinger); ok {
		cachePinger = p
	}
	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm, Cache: cachePinger}
	healthHandler.Register(engine)
	paas.RegisterDocs(engine)

	catalogHandler := &handler.CatalogHandler{}
	catalogHandler.Register(engine)
	simulatorHandler := &handler.SimulatorHandler{Service: simulatorSvc, Logger: logger}
	simulatorHandler.Register(engine)
	leaderboardHandler := &handler.LeaderboardHandler{Service: leaderboardSvc, Logger: logger}
	leaderboardHandler.Register(engine)
	streamHandler := &handler.StreamHandler{
		Sessions:  simulatorSvc,
		Hub:       hub,
		Flags:     settingsSvc,
		Heartbeat: 30 * time.Second,
		Logger:    logger,
	}
	streamHandler.Register(engine)
	settingsHandler := &handler.SettingsHandler{Settings: settingsSvc}
	settingsHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	baseCtx := ctx
	if paasClient != nil {
		baseCtx = paas.WithClient(ctx, paasClient)
	}

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, baseCtx)
		_, err = cronRunner.Add("leaderboard_refresh", cfg.Cron.LeaderboardRefresh, leaderboardSvc.RunOnce)
		if err != nil {
			logger.Warn("cron register leaderboard refresh failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func initVerifier(cfg config.AuthConfig, logger *zap.Logger) *auth.JWT {
	if !cfg.Enabled {
		return nil
	}
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		logger.Fatal("auth enabled without jwt_secret")
	}
	return &auth.JWT{Secret: []byte(secret), Issuer: cfg.Issuer, TokenTTL: cfg.TokenTTL}
}

func initPaaSClient(cfg config.PaaSConfig, logger *zap.Logger) *paas.Client {
	p := paas.NewClient(cfg)
	if p == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := p.Login(ctx); err != nil {
		logger.Warn("paas login failed (audit logs disabled)", zap.Error(err))
		return nil
	}
	logger.Info("paas login ok")
	return p
}
