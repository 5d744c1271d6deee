package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gislivinna-utsalapp/utsalapp/configs"
	"github.com/gislivinna-utsalapp/utsalapp/controllers"
	"github.com/gislivinna-utsalapp/utsalapp/middlewares"
	"github.com/gislivinna-utsalapp/utsalapp/repository"
	"github.com/gislivinna-utsalapp/utsalapp/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	svc := services.NewSalePostService(db)
	stores := repository.NewStoreRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	storeCtrl := controllers.NewStoreController(stores, svc)
	postCtrl := controllers.NewSalePostController(svc, stores)
	uploadCtrl := controllers.NewUploadController(cfg)

	authLimiter := middlewares.RateLimit(10, 15*time.Minute)
	viewLimiter := middlewares.RateLimit(30, time.Minute)

	api := r.Group("/api/v1")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register-store", authLimiter, authCtrl.RegisterStore)
		a.POST("/login", authLimiter, authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg), authCtrl.Me)
	}

	// Public browse
	api.GET("/stores/:id", storeCtrl.Get)
	api.GET("/stores/:id/posts", storeCtrl.Posts)
	api.GET("/posts", postCtrl.List)
	api.GET("/posts/:id", postCtrl.Detail)
	api.POST("/posts/:id/view", viewLimiter, postCtrl.View)

	// Store owners and admins
	api.PUT("/stores/:id", middlewares.AuthMiddleware(cfg), storeCtrl.Update)

	owner := api.Group("", middlewares.AuthMiddleware(cfg, "store", "admin"))
	{
		owner.POST("/posts", postCtrl.Create)
		owner.PUT("/posts/:id", postCtrl.Update)
		owner.DELETE("/posts/:id", postCtrl.Delete)
		owner.POST("/uploads", uploadCtrl.Upload)
	}
}
