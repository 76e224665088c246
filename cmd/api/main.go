package main

import (
	"log"
	"net/http"

	"github.com/docpoint/clinic-scheduler/internal/cache"
	"github.com/docpoint/clinic-scheduler/internal/config"
	dbpkg "github.com/docpoint/clinic-scheduler/internal/db"
	"github.com/docpoint/clinic-scheduler/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	windowCache, err := cache.NewWindowCache(cfg.RedisURL, cfg.WindowCacheTTL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	if windowCache == nil {
		log.Println("window cache disabled (REDIS_URL not set)")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, windowCache, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
