package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"digimart.backend/internal/interfaces/http/handlers"
	"digimart.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	sellerHandler  *handlers.SellerHandler
	adminHandler   *handlers.AdminHandler
	productHandler *handlers.ProductHandler
	catalogHandler *handlers.CatalogHandler
	reviewHandler  *handlers.ReviewHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Public storefront
		v1.GET("/catalog", d.catalogHandler.List)
		v1.GET("/products/:id", d.productHandler.GetPublic)
		v1.GET("/products/:id/reviews", d.reviewHandler.ListByProduct)

		// Product management (protected)
		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.POST("", d.productHandler.Create)
			products.GET("/mine", d.productHandler.ListMine)
			products.PATCH("/:id", d.productHandler.Update)
			products.PUT("/:id/asset", d.productHandler.ReplaceAsset)
			products.PUT("/:id/thumbnail", d.productHandler.ReplaceThumbnail)
			products.DELETE("/:id", d.productHandler.Delete)
			products.POST("/:id/reviews", d.reviewHandler.Create)
		}

		// Seller application routes (protected)
		sellers := v1.Group("/sellers")
		sellers.Use(d.authMiddleware)
		{
			sellers.POST("/apply", d.sellerHandler.Apply)
			sellers.GET("/status", d.sellerHandler.Status)
			sellers.GET("/profile", d.sellerHandler.Profile)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/sellers", d.adminHandler.ListApplications)
			admin.GET("/sellers/:id", d.adminHandler.GetApplicant)
			admin.POST("/sellers/:id/review", d.adminHandler.ReviewApplication)
			admin.POST("/products/:id/moderate", d.adminHandler.ModerateProduct)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID, X-Session-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
