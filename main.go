package main

import (
	"log"

	"github.com/formbase/forms-go/config"
	"github.com/formbase/forms-go/db"
	_ "github.com/formbase/forms-go/docs"
	"github.com/formbase/forms-go/handlers"
	"github.com/formbase/forms-go/middleware"
	"github.com/formbase/forms-go/minio"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/routes"
	"github.com/formbase/forms-go/services"
	"github.com/gin-gonic/gin"
)

// @title Formbase API
// @version 1.0
// @description Form building and response collection service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.InitMinio()

	repos := repositories.New()
	svcs := services.New(repos)
	h := handlers.New(svcs)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, h)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
