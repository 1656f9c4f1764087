package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "student-helper/internal/handler/http"
	gormpersistence "student-helper/internal/infra/persistence/gorm"
	"student-helper/internal/infra/setup"
	"student-helper/internal/middleware"
	"student-helper/internal/service"
)

// Config 结构体用于存储从环境变量或 .env 文件加载的配置
type Config struct {
	DBUser             string
	DBPassword         string
	DBHost             string
	DBPort             string
	DBName             string
	SessionSecret      string
	ServerPort         string
	LogLevel           string
	AppEnv             string // development / production
	SessionExpiryHours int
}

// LoadConfig 从环境变量加载配置。
// 所有值都有开发用默认值，可通过环境变量覆盖。
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)，忽略错误，允许只使用环境变量
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASS"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		SessionSecret: os.Getenv("SECRET_KEY"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		AppEnv:        os.Getenv("APP_ENV"),
		// --- 默认值 ---
		SessionExpiryHours: 24,
	}

	if cfg.DBUser == "" {
		cfg.DBUser = "root"
	}
	if cfg.DBPassword == "" {
		cfg.DBPassword = "123456"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "127.0.0.1"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}
	if cfg.DBName == "" {
		cfg.DBName = "new_student"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "change-this-secret-for-dev"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App 结构体包含应用的所有组件和配置
type App struct {
	Config     *Config
	Log        *logrus.Logger
	DB         *gorm.DB
	HttpServer *http.Server
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	// 2. 初始化 Logger
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // cfg.LogLevel 已被 LoadConfig 验证
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	logrus.SetLevel(logLevel)
	log.Info("Configuration loaded successfully")

	// 3. 初始化基础设施
	// 建库 / 建表 / 种子数据都是尽力而为：失败只记录日志，不阻止启动
	setup.EnsureDatabase(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, err
	}

	if err := setup.MigrateDB(db); err != nil {
		log.WithError(err).Error("Database migration failed")
	} else if err := setup.SeedDB(db); err != nil {
		log.WithError(err).Error("Database seeding failed")
	}

	// 4. 初始化 Repositories
	questionRepo := gormpersistence.NewGormQuestionRepository(db)
	submissionRepo := gormpersistence.NewGormSubmissionRepository(db)
	userRepo := gormpersistence.NewGormUserRepository(db)
	log.Info("Repositories initialized")

	// 5. 初始化 Services
	contentService := service.NewContentService(questionRepo)
	submissionService := service.NewSubmissionService(submissionRepo)
	authService, err := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionExpiryHours)
	if err != nil {
		return nil, err
	}
	log.Info("Services initialized")

	// 6. 初始化 Handlers
	sessionMaxAge := cfg.SessionExpiryHours * 3600
	contentHandler := httpHandler.NewContentHandler(contentService)
	authHandler := httpHandler.NewAuthHandler(authService, sessionMaxAge)
	submissionHandler := httpHandler.NewSubmissionHandler(submissionService)
	log.Info("Handlers initialized")

	// 7. 初始化 Gin Engine 和路由
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(middleware.CurrentUser(cfg.SessionSecret))
	router.LoadHTMLGlob("web/templates/*.html")
	registerRoutes(router, contentHandler, authHandler, submissionHandler)
	log.Info("Router setup complete")

	// 8. 初始化 HTTP Server
	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:     cfg,
		Log:        log,
		DB:         db,
		HttpServer: httpServer,
	}, nil
}

// registerRoutes 绑定全部路由
func registerRoutes(router *gin.Engine, contentHandler *httpHandler.ContentHandler,
	authHandler *httpHandler.AuthHandler, submissionHandler *httpHandler.SubmissionHandler) {

	// 页面路由
	router.GET("/", contentHandler.Index)
	router.GET("/submit", submissionHandler.ShowSubmitForm)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// 投稿 API
	api := router.Group("/api")
	{
		api.GET("/submissions", submissionHandler.List)
		api.POST("/submissions", submissionHandler.Create)
		api.DELETE("/submissions/:id", submissionHandler.DeleteOne)
		// 清空投稿属于管理操作，要求已登录会话
		api.DELETE("/submissions", middleware.RequireAuth(), submissionHandler.DeleteAll)
	}

	// 板块内容页，必须最后注册以免遮蔽静态路由
	router.GET("/:category/:slug", contentHandler.Subpage)
}

// Start 启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if sqlDB, err := a.DB.DB(); err == nil && sqlDB != nil {
		if err := sqlDB.Close(); err != nil {
			a.Log.Errorf("Error closing database connection: %v", err)
		} else {
			a.Log.Info("Database connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware 创建一个 Gin 中间件用于记录请求日志
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()
		if errorMessage != "" {
			entry.Error(errorMessage)
		} else if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Info("Request handled")
		}
	}
}
