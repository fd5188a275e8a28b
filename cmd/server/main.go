package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vaidya/internal/api"
	"vaidya/internal/config"
	"vaidya/internal/diagnose"
	"vaidya/internal/llm"
	"vaidya/internal/storage"
	"vaidya/internal/stt"
	"vaidya/internal/tts"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Missing credential is fatal at startup, not recoverable mid-session.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	inferencer := llm.New(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.ChatModel)

	sttProvider, err := stt.CreateProvider(cfg)
	if err != nil {
		log.Printf("Warning: STT provider unavailable: %v. Voice intake disabled.", err)
		sttProvider = nil
	}

	synth := tts.New(cfg.TTSBaseURL)
	svc := diagnose.New(inferencer, sttProvider, synth)
	store := storage.NewConsultationStore()

	r := gin.Default()
	r.Use(corsMiddleware())
	api.RegisterRoutes(r, api.NewHandler(svc, store, "uploads"))

	log.Printf("Vaidya backend running on :%s (model: %s)", cfg.Port, cfg.ChatModel)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for the web shell
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
