package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/csanchez-dev/myflix-api/internal/auth"
	"github.com/csanchez-dev/myflix-api/internal/transport/http/handler"
	"github.com/csanchez-dev/myflix-api/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, tokens *auth.TokenService, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, movieHandler *handler.MovieHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens)

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to My Movie App!!!")
	})
	r.POST("/users", userHandler.Register)
	r.POST("/login", authHandler.Login)

	// Catalog reads require a valid token, not ownership
	movies := r.Group("/movies", authMW)
	movies.GET("", movieHandler.List)
	movies.GET("/:title", movieHandler.GetByTitle)

	r.GET("/genre", authMW, movieHandler.ListGenres)
	r.GET("/genre/:name", authMW, movieHandler.GetByGenre)
	r.GET("/director/:name", authMW, movieHandler.GetByDirector)

	// Account mutations require token + ownership (checked in the usecase)
	r.PUT("/users/:username", authMW, userHandler.Update)
	r.POST("/users/:userId/favorites/:movieId", authMW, userHandler.AddFavorite)
	r.DELETE("/users/:userId/favorites/:movieId", authMW, userHandler.RemoveFavorite)
	r.DELETE("/users/:userId", authMW, userHandler.Deregister)

	return r
}
