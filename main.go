package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MicheleCazzola/ezelectronics-sub001/cache"
	"github.com/MicheleCazzola/ezelectronics-sub001/database"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
	"github.com/MicheleCazzola/ezelectronics-sub001/routes"
)

func main() {
	log.Println("✅ Starting EZElectronics server...")

	cfg := database.LoadConfig()
	middleware.SetJWTSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	// Redis is optional; without it descriptor lookups go straight to SQLite.
	pc := cache.NewProductCache(db, nil)
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(cfg)
		if err != nil {
			log.Printf("❌ Redis unavailable, continuing without cache: %v", err)
		} else {
			log.Println("✅ Product cache enabled")
			pc = cache.NewProductCache(db, rdb)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, pc)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
