package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Feni2Backend/config/cloudinary"
	"Feni2Backend/config/db"
	"Feni2Backend/jobs"
	"Feni2Backend/routes"
	"Feni2Backend/services"
)

var startServer = func(r *gin.Engine, addr string) error {
	return r.Run(addr)
}

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		log.Fatal("Unable to connect to the database: ", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("Unable to create indexes: ", err)
	}
	if err := services.SeedComplaintCounter(ctx); err != nil {
		log.Fatal("Unable to seed the complaint counter: ", err)
	}
	if err := cloudinary.Init(); err != nil {
		log.Println("Cloudinary init failed:", err)
	}

	jobs.StartDailyScheduler()

	r := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := startServer(r, ":"+port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}

func setupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.Routes(r)
	return r
}

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
