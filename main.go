package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"food_delivery_admin/config"
	"food_delivery_admin/database"
	"food_delivery_admin/router"
	"food_delivery_admin/services"
	"food_delivery_admin/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Bootstrap runs to completion before the listener starts; a failure
	// here is fatal rather than deferred to the first query.
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate schema: %v", err)
	}
	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
	}
	utils.InfoLogger.Println("Schema ready")

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var statsCache *services.StatsCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		statsCache = services.NewStatsCache(client, 30*time.Second)
		utils.InfoLogger.Printf("Dashboard stats cache enabled (redis %s)", addr)
	}

	sweeper := services.NewCouponSweeper(db)
	sweeper.Start()
	defer sweeper.Stop()

	r := router.SetupRouter(db, statsCache)

	port := config.Getenv("PORT", "8080")
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
