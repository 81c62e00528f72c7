package router

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// AuthRoutes registers authentication and profile endpoints
type AuthRoutes struct {
	Handler *handler.AuthHandler
}

func (r AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", r.Handler.Register)
		auth.POST("/login", r.Handler.Login)
		auth.POST("/refresh", r.Handler.Refresh)
		auth.POST("/logout", r.Handler.Logout)
		auth.GET("/me", r.Handler.Me)
		auth.PUT("/me", r.Handler.UpdateProfile)
		auth.PUT("/me/password", r.Handler.ChangePassword)
	}
}

// CatalogRoutes registers product and category endpoints. Write
// operations require the admin role.
type CatalogRoutes struct {
	Products   *handler.ProductHandler
	Categories *handler.CategoryHandler
}

func (r CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", r.Products.List)
		products.GET("/:id", r.Products.Get)
		products.POST("", middleware.RequireAdmin(), r.Products.Create)
		products.PUT("/:id", middleware.RequireAdmin(), r.Products.Update)
		products.DELETE("/:id", middleware.RequireAdmin(), r.Products.Delete)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", r.Categories.List)
		categories.GET("/:id", r.Categories.Get)
		categories.GET("/:id/products", r.Products.ListByCategory)
		categories.POST("", middleware.RequireAdmin(), r.Categories.Create)
		categories.PUT("/:id", middleware.RequireAdmin(), r.Categories.Update)
		categories.DELETE("/:id", middleware.RequireAdmin(), r.Categories.Delete)
	}
}

// OrderRoutes registers order endpoints
type OrderRoutes struct {
	Handler *handler.OrderHandler
}

func (r OrderRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", r.Handler.Place)
		orders.GET("", r.Handler.ListMine)
		orders.GET("/:id", r.Handler.Get)
		orders.POST("/:id/cancel", r.Handler.Cancel)
		orders.GET("/all", middleware.RequireAdmin(), r.Handler.ListAll)
		orders.PUT("/:id/status", middleware.RequireAdmin(), r.Handler.UpdateStatus)
	}
}

// ReportRoutes registers reporting endpoints, admin only
type ReportRoutes struct {
	Handler *handler.ReportHandler
}

func (r ReportRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales", middleware.RequireAdmin())
	{
		sales.GET("/report", r.Handler.Sales)
	}
}
