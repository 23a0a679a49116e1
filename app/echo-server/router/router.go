package router

import (
	"github.com/labstack/echo/v4"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/internal/rest"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired, adminOnly, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.POST("/interactions", handler.RecordInteraction, authRequired)
	users.PUT("/:id", handler.UpdateUser, authRequired, selfOrAdmin)
	users.PUT("/:id/preferences", handler.UpdatePreferences, authRequired, selfOrAdmin)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, selfOrAdmin)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetProducts)
	products.GET("/categories", handler.GetCategories)
	products.GET("/:id", handler.GetProductByID)
	products.GET("/:id/reviews", handler.GetReviews)
	products.POST("/:id/reviews", handler.AddReview, authRequired)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired, adminOnly echo.MiddlewareFunc) {
	orders := api.Group("/orders")

	orders.POST("", handler.CreateOrder)
	orders.GET("", handler.GetOrders, authRequired, adminOnly)
	orders.GET("/stats/summary", handler.GetStats, authRequired, adminOnly)
	orders.GET("/:id", handler.GetOrderByID, authRequired)
	orders.GET("/user/:userId", handler.GetOrdersByUser, authRequired)
	orders.PUT("/:id/status", handler.UpdateStatus, authRequired, adminOnly)
	orders.PUT("/:id/payment", handler.UpdatePayment, authRequired, adminOnly)
	orders.DELETE("/:id", handler.CancelOrder, authRequired)
}

func SetupAIRoutes(api *echo.Group, handler *rest.AIHandler) {
	ai := api.Group("/ai")

	ai.GET("/recommendations/:userId", handler.GetRecommendations)
	ai.POST("/price-prediction", handler.PredictPrice)
	ai.POST("/dynamic-pricing", handler.DynamicPricing)
	ai.POST("/sentiment-analysis", handler.AnalyzeSentiment)
	ai.GET("/search", handler.Search)
}
