package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/anporsh/printery/internal/server/http/handlers"
	"github.com/anporsh/printery/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PrintshopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	wishHandler := handlers.NewWishHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	offerHandler := handlers.NewOfferHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/wishes", wishHandler.Create)
	userAuth.GET("/wishes", wishHandler.List)
	userAuth.GET("/wishes/:id", wishHandler.Get)
	userAuth.PUT("/wishes/:id", wishHandler.Update)
	userAuth.DELETE("/wishes/:id", wishHandler.Delete)
	userAuth.POST("/orders", orderHandler.Create)

	offers := api.Group("/offers")
	offers.GET("", offerHandler.List)
	offers.GET("/:id", offerHandler.Get)
	offers.GET("/:id/prices", offerHandler.Prices)

	offersAuth := offers.Group("")
	offersAuth.Use(middleware.AuthRequired(facade))
	offersAuth.POST("", offerHandler.Create)
	offersAuth.PUT("/:id", offerHandler.Update)
	offersAuth.DELETE("/:id", offerHandler.Delete)
	offersAuth.POST("/:id/prices", offerHandler.AddPrice)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete)

	return engine
}
