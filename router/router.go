package router

import (
	"io/fs"
	"net/http"
	"regexp"
	"time"

	"budget/api"
	"budget/config"
	_ "budget/docs"
	"budget/middleware"
	"budget/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware(cfg))

	// 嵌入的静态文件 - 目标管理页面
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 写操作限流
	writeLimit := middleware.WriteRateLimit(
		cfg.RateLimit.MaxAttempts,
		time.Duration(cfg.RateLimit.WindowSec)*time.Second,
	)

	// API 路由组
	apiGroup := r.Group("/api")
	{
		goalHandler := api.NewGoalHandler()
		goals := apiGroup.Group("/goals")
		{
			goals.GET("", goalHandler.List)
			goals.POST("", writeLimit, goalHandler.Create)
			goals.GET("/:id", goalHandler.Get)
			goals.PUT("/:id", writeLimit, goalHandler.Update)
			goals.DELETE("/:id", writeLimit, goalHandler.Delete)

			// 内嵌支出
			expenseHandler := api.NewExpenseHandler()
			goals.POST("/:id/expenses", writeLimit, expenseHandler.Add)
			goals.PUT("/:id/expenses/:expenseId", writeLimit, expenseHandler.Update)
			goals.DELETE("/:id/expenses/:expenseId", writeLimit, expenseHandler.Delete)

			// 导出
			exportHandler := api.NewExportHandler()
			goals.GET("/:id/export/csv", exportHandler.ExportCSV)
			goals.GET("/:id/export/excel", exportHandler.ExportExcel)
			goals.GET("/:id/export/json", exportHandler.ExportJSON)
		}

		apiGroup.GET("/health", healthCheck)
	}

	// 健康检查（兼容不带 /api 前缀的探活）
	r.GET("/health", healthCheck)

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
	})
}

// 本机来源（任意端口）始终放行
var loopbackOrigin = regexp.MustCompile(`^http://(localhost|127\.0\.0\.1)(:\d+)?$`)

// CORSMiddleware CORS 跨域中间件
// 无 Origin 的请求（curl、App 等）直接放行；浏览器请求只放行本机来源和配置的额外来源
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORS.AllowedOrigins))
	for _, origin := range cfg.CORS.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (loopbackOrigin.MatchString(origin) || allowed[origin]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
			c.Writer.Header().Set("Vary", "Origin")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
