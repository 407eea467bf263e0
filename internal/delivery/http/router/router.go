// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ecomarket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all the handlers that need to be registered, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	SellerHandler        *handler.SellerHandler
	ProductHandler       *handler.ProductHandler
	CartHandler          *handler.CartHandler
	OrderHandler         *handler.OrderHandler
	PayoutHandler        *handler.PayoutHandler
	AdminHandler         *handler.AdminHandler
	LoyaltyHandler       *handler.LoyaltyHandler
	EnvironmentalHandler *handler.EnvironmentalHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	user          *handler.UserHandler
	seller        *handler.SellerHandler
	product       *handler.ProductHandler
	cart          *handler.CartHandler
	order         *handler.OrderHandler
	payout        *handler.PayoutHandler
	admin         *handler.AdminHandler
	loyalty       *handler.LoyaltyHandler
	environmental *handler.EnvironmentalHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:          params.UserHandler,
		seller:        params.SellerHandler,
		product:       params.ProductHandler,
		cart:          params.CartHandler,
		order:         params.OrderHandler,
		payout:        params.PayoutHandler,
		admin:         params.AdminHandler,
		loyalty:       params.LoyaltyHandler,
		environmental: params.EnvironmentalHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.user.CreateUser)
		userGroup.GET("/:id", r.user.GetUser)
		userGroup.PATCH("/:id", r.user.UpdateUser)
		userGroup.GET("/:id/stats", r.user.GetUserStats)
		userGroup.GET("/:id/loyalty", r.loyalty.GetLoyaltyTransactions)
		userGroup.GET("/:id/environmental", r.environmental.GetEnvironmentalActions)
	}

	sellerGroup := api.Group("/sellers")
	{
		sellerGroup.POST("", r.seller.CreateSeller)
		sellerGroup.POST("/apply", r.seller.ApplySeller)
		sellerGroup.GET("/applications", r.seller.GetSellerApplications)
		sellerGroup.GET("/by-user/:userId", r.seller.GetSellerByUser)
		sellerGroup.GET("/:id", r.seller.GetSeller)
		sellerGroup.PATCH("/:id", r.seller.UpdateSeller)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.product.GetProducts)
		productGroup.POST("", r.product.CreateProduct)
		productGroup.GET("/:id", r.product.GetProduct)
		productGroup.PATCH("/:id", r.product.UpdateProduct)
		productGroup.DELETE("/:id", r.product.DeleteProduct)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("/:userId", r.cart.GetCartItems)
		cartGroup.POST("", r.cart.AddToCart)
		cartGroup.PATCH("/items/:id", r.cart.UpdateCartItem)
		cartGroup.DELETE("/items/:id", r.cart.RemoveFromCart)
		cartGroup.DELETE("/:userId", r.cart.ClearCart)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.order.GetOrders)
		orderGroup.POST("", r.order.CreateOrder)
		orderGroup.GET("/:id", r.order.GetOrder)
		orderGroup.PATCH("/:id", r.order.UpdateOrder)
		orderGroup.POST("/:id/items", r.order.CreateOrderItem)
	}

	payoutGroup := api.Group("/payouts")
	{
		payoutGroup.GET("", r.payout.GetPayouts)
		payoutGroup.POST("", r.payout.CreatePayout)
		payoutGroup.PATCH("/:id", r.payout.UpdatePayout)
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/orders/disputed", r.admin.GetDisputedOrders)
		adminGroup.GET("/orders/held", r.admin.GetHeldOrders)
		adminGroup.GET("/stats", r.admin.GetPlatformStats)
	}

	api.POST("/loyalty", r.loyalty.CreateLoyaltyTransaction)
	api.POST("/environmental", r.environmental.CreateEnvironmentalAction)
	api.GET("/environmental/impact", r.environmental.GetTotalImpact)
}
