package main

import (
	"fmt"
	"time"

	_uuid "github.com/google/uuid"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"docchat/controller"
	"docchat/model"
	"docchat/platform"
	"docchat/service"
)

// CORSMiddleware ...
// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

// RequestIDMiddleware ...
// Generate a unique ID and attach it to each request for future reference or use
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := _uuid.New()
		c.Writer.Header().Set("X-Request-Id", uuid.String())
		c.Set("requestId", uuid.String())
		c.Next()
	}
}

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)

		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		userAgent := c.Request.UserAgent()
		requestId := c.GetString("requestId")

		logrus.Infof(
			" [%s] %d | %v | %s | %s | %s | %s ",
			requestId,
			status,
			latency,
			clientIP,
			method,
			path,
			userAgent,
		)
	}
}

func main() {
	fmt.Println("Server started...")

	if err := platform.InitConfig(); err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	platform.InitFile("./log", "gin")
	platform.InitLogger("./log", "docchat")

	r := gin.Default()
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LogMiddleware())

	//init database
	platform.InitDB()
	model.InstallDB()

	platform.InitRAGClient()

	api := r.Group("/api")
	{
		user := new(controller.UserController)
		api.POST("/register", user.Register)
		api.POST("/login", user.Login)

		chat := new(controller.ChatController)
		api.GET("/history", controller.TokenAuthMiddleware(), chat.History)
		api.POST("/chat", controller.TokenAuthMiddleware(), chat.Chat)
		api.POST("/upload", controller.TokenAuthMiddleware(), chat.Upload)

		api.GET("/healthz", chat.Healthz)
	}

	if platform.Cfg.SMTPHost != "" {
		digest := service.DigestService{}
		c := cron.New()
		c.AddFunc(platform.Cfg.DigestCron, func() {
			if err := digest.Send(); err != nil {
				logrus.Warnf("daily digest failed: %v", err)
			}
		})
		c.Start()
	}

	r.Run(":" + platform.Cfg.Port)
}
