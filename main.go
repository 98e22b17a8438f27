package main

import (
	"fmt"
	"log"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/configs"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/middlewares"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedManager(); err != nil {
		log.Fatalf("seed manager failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
