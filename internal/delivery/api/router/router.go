// Package router contains routing for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ShopHandler       *handler.ShopHandler
	CollectionHandler *handler.CollectionHandler
	AdminHandler      *handler.AdminHandler
	MediaHandler      *handler.MediaHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	shopHandler       *handler.ShopHandler
	collectionHandler *handler.CollectionHandler
	adminHandler      *handler.AdminHandler
	mediaHandler      *handler.MediaHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		shopHandler:       params.ShopHandler,
		collectionHandler: params.CollectionHandler,
		adminHandler:      params.AdminHandler,
		mediaHandler:      params.MediaHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/uploads/:key", r.mediaHandler.Serve)

	api := e.Group("/api")
	api.GET("", handler.APIIndex)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	shopGroup := api.Group("/shop")
	{
		shopGroup.GET("/categories", r.shopHandler.Categories)
		shopGroup.GET("/ads", r.shopHandler.Ads)
		shopGroup.GET("/notices", r.shopHandler.Notices)
		shopGroup.GET("/home", r.shopHandler.Home)
		shopGroup.GET("/category", r.shopHandler.Category)
		shopGroup.GET("/products", r.shopHandler.Products)
		shopGroup.GET("/products/qr", r.shopHandler.ProductQR)
	}

	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.collectionHandler.GetCart)
		cartGroup.PUT("", r.collectionHandler.ReplaceCart)
	}

	favoritesGroup := api.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.collectionHandler.GetFavorites)
		favoritesGroup.PUT("", r.collectionHandler.ReplaceFavorites)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the role
	{
		adminGroup.GET("/categories", r.adminHandler.GetCategories)
		adminGroup.PUT("/categories", r.adminHandler.ReplaceCategories)

		adminGroup.GET("/ads", r.adminHandler.ListAds)
		adminGroup.POST("/ads", r.adminHandler.CreateAd)
		adminGroup.PUT("/ads/:id", r.adminHandler.UpdateAd)
		adminGroup.DELETE("/ads/:id", r.adminHandler.DeleteAd)

		adminGroup.POST("/upload", r.mediaHandler.Upload)

		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.GET("/products/export", r.adminHandler.ExportProducts)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id", r.adminHandler.UpdateUser)

		adminGroup.GET("/notices", r.adminHandler.ListNotices)
		adminGroup.POST("/notices", r.adminHandler.CreateNotice)
		adminGroup.PUT("/notices/:id", r.adminHandler.UpdateNotice)
		adminGroup.DELETE("/notices/:id", r.adminHandler.DeleteNotice)

		adminGroup.GET("/home", r.adminHandler.GetHome)
		adminGroup.PUT("/home", r.adminHandler.ReplaceHome)
	}
}
