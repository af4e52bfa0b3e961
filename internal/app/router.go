package app

import (
	"qa_kb_backend/docs"
	"qa_kb_backend/internal/config"
	"qa_kb_backend/internal/middleware"
	"qa_kb_backend/pkg/monitoring"
	"qa_kb_backend/pkg/security"
	"qa_kb_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 兼容旧前端的无前缀写接口
	router.POST("/save-answer", c.qa.SaveAnswer)
	router.POST("/create-question-answer", c.qa.CreateQuestionAnswer)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/login", c.auth.Login)

		// 知识库读接口
		api.GET("/questions", c.knowledge.SearchQuestions)
		api.GET("/context/:contextId", c.knowledge.GetContext)
		api.GET("/getDocuments", c.knowledge.GetDocuments)
		api.GET("/getParagraphs", c.knowledge.GetParagraphs)

		// 问答写接口
		api.POST("/updateAnswer", c.qa.UpdateAnswer)
		api.POST("/save-answer", c.qa.SaveAnswer)
		api.POST("/create-question-answer", c.qa.CreateQuestionAnswer)
		api.POST("/create-question-answer-draft", c.qa.CreateQuestionAnswer)
		api.POST("/generate-questions", c.question.GenerateQuestions)
	}
}
