package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qa_kb_backend/internal/config"
	"qa_kb_backend/internal/controller"
	"qa_kb_backend/internal/repository"
	"qa_kb_backend/internal/service"
	"qa_kb_backend/pkg/configwatcher"
	"qa_kb_backend/pkg/database"
	"qa_kb_backend/pkg/logger"
	"qa_kb_backend/pkg/monitoring"
	"qa_kb_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/klauspost/compress/gzhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	qa        *repository.QARepository
	knowledge *repository.KnowledgeRepository
	token     *repository.TokenRepository
	cache     *repository.ContextCache
}

type services struct {
	qa        *service.QAService
	knowledge *service.KnowledgeService
	auth      *service.AuthService
	generator *service.QuestionGenerator
}

type controllers struct {
	qa        *controller.QAController
	knowledge *controller.KnowledgeController
	auth      *controller.AuthController
	question  *controller.QuestionController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		qa:        repository.NewQARepository(db, repository.NewIDAllocator()),
		knowledge: repository.NewKnowledgeRepository(db),
		token:     repository.NewTokenRepository(db),
	}
	if rdb != nil {
		repos.cache = repository.NewContextCache(rdb, cfg.Redis.ContextTTL)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{
		qa:        service.NewQAService(repos.qa, cfg.IDs.SyncAnswerToContext),
		auth:      service.NewAuthService(repos.token),
		generator: service.NewQuestionGenerator(),
	}

	// 接口变量不能持有类型化的 nil 指针
	if repos.cache != nil {
		s.knowledge = service.NewKnowledgeService(repos.knowledge, repos.cache)
	} else {
		s.knowledge = service.NewKnowledgeService(repos.knowledge, nil)
	}
	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	c := &controllers{
		qa:        controller.NewQAController(s.qa),
		knowledge: controller.NewKnowledgeController(s.knowledge),
		auth:      controller.NewAuthController(s.auth),
		question:  controller.NewQuestionController(s.generator),
	}
	if repos.cache != nil {
		c.health = controller.NewHealthController(db, repos.cache)
	} else {
		c.health = controller.NewHealthController(db, nil)
	}
	return c
}

// NewApp 初始化日志、数据库、Redis 并组装路由；初始化失败直接退出
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// 开发模式或显式指定 --migrate 时建表
	if cfg.ForceMigrate || cfg.Server.Mode == gin.DebugMode {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Database migration failed", zap.Error(err))
		}
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := newApp(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func newApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}
	app.RegisterConfigCallback(logger.ApplyConfig)

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, repos, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: gzhttp.GzipHandler(a.Router),
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if a.Config.Server.WatchConfig && a.Config.File != "" {
		go func() {
			err := configwatcher.WatchConfig(ctx, a.Config.File, 500*time.Millisecond, a.applyConfig)
			if err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
