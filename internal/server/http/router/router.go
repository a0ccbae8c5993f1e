package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/authgate/internal/server/http/handlers"
	"github.com/polkiloo/authgate/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccountFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	userHandler := handlers.NewUserHandler(facade, logger)

	engine.GET("/", handlers.Home)
	engine.POST("/register", authHandler.Register)
	engine.POST("/login", authHandler.Login)

	guarded := engine.Group("/user")
	guarded.Use(middleware.AuthRequired(facade))
	guarded.GET("/:id", userHandler.Profile)

	return engine
}
