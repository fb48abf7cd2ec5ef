package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"vibeplan/cmd/fx/dbfx"
	"vibeplan/cmd/fx/placesfx"
	"vibeplan/cmd/fx/planfx"
	"vibeplan/cmd/fx/searchfx"
	"vibeplan/cmd/fx/tagsfx"
	"vibeplan/internal/api/controllers"
	"vibeplan/pkg/middleware"
	"vibeplan/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		tagsfx.Module,
		planfx.Module,
		searchfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	placesController *controllers.PlacesController,
	tagsController *controllers.TagController,
	searchController *controllers.SearchController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, placesController, tagsController, searchController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	placesController *controllers.PlacesController,
	tagsController *controllers.TagController,
	searchController *controllers.SearchController) {

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": http.StatusText(http.StatusOK)}, "OK")
	})

	planGroup := r.Group("/plan")
	planGroup.POST("", planController.GeneratePlanHandler)

	placesGroup := r.Group("/places")
	placesGroup.GET("/:city", placesController.GetPlacesByCity)
	placesGroup.POST("/search", searchController.SearchPlacesHandler)

	tagsGroup := r.Group("/tags")
	tagsGroup.GET("", tagsController.ListTagOptionsHandler)
}
