package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhvuq/planora/internal/config"
	"github.com/minhvuq/planora/internal/handler"
	"github.com/minhvuq/planora/internal/middleware"
	"github.com/minhvuq/planora/internal/service"
	"github.com/minhvuq/planora/pkg/firebase"
	"github.com/minhvuq/planora/pkg/gemini"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Planora Prompt Relay API
// @version         1.0
// @description     Authenticated relay to the Gemini generative-language API.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting Planora Prompt Relay [env=%s]", cfg.App.Env)

	// ==================== Firebase (construct once, hold for process lifetime) ====================
	ctx := context.Background()
	app, err := firebase.NewApp(ctx, firebase.Credentials{
		ProjectID:   cfg.Firebase.ProjectID,
		PrivateKey:  cfg.Firebase.PrivateKey,
		ClientEmail: cfg.Firebase.ClientEmail,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize Firebase: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to get Firebase auth client: %v", err)
	}
	log.Println("✅ Firebase auth initialized")

	// ==================== Gemini ====================
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, /api/gemini will return 500")
	}
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	// ==================== Initialize Layers ====================
	relayService := service.NewRelayService(geminiClient)
	geminiHandler := handler.NewGeminiHandler(relayService)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Swagger configuration
	// Serve swagger.json at /docs/swagger.json to avoid conflict with /swagger/* wildcard
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")
	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "planora-relay",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	api := router.Group("/api")
	api.Use(middleware.FirebaseAuth(authClient))
	{
		api.POST("/gemini", geminiHandler.Generate)
	}

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 Planora relay running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
