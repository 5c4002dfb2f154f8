package router

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/onyxlab/onyx/internal/config"
	"github.com/onyxlab/onyx/internal/server/http/handlers"
	"github.com/onyxlab/onyx/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.NotesFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsMiddleware(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	materialHandler := handlers.NewMaterialHandler(facade, logger)
	systemHandler := handlers.NewSystemHandler(facade, logger)

	engine.GET("/", systemHandler.Health)

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authorized := engine.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.GET("/protected", systemHandler.Protected)
	authorized.GET("/materials", materialHandler.List)
	authorized.POST("/materials", materialHandler.Create)
	authorized.PUT("/materials/:id", materialHandler.Update)
	authorized.DELETE("/materials/:id", materialHandler.Delete)

	engine.GET("/materials/public/:public_id", materialHandler.Public)

	return engine
}

func corsMiddleware(origins string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if origins == "" || origins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}
