package routes

import (
	"mandi/auth"
	"mandi/cart"
	"mandi/middleware"
	"mandi/orders"
	"mandi/products"
	"mandi/profile"
	"mandi/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", auth.Logout)
}

func AddProfileRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/profile", middleware.Chain(rl.Limit, middleware.Authenticate)(profile.SaveProfile))
	router.GET("/api/profile/:userid", profile.GetProfile)
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productid", products.GetProduct)
	router.POST("/api/products", middleware.Chain(rl.Limit, middleware.Authenticate)(products.CreateProduct))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *cart.Handlers) {
	guard := middleware.Chain(rl.Limit, middleware.Authenticate)
	router.GET("/api/cart", guard(h.GetCart))
	router.POST("/api/cart/add", guard(h.AddToCart))
	router.PUT("/api/cart/item/:productid", guard(h.UpdateQuantity))
	router.DELETE("/api/cart/item/:productid", guard(h.RemoveFromCart))
	router.DELETE("/api/cart/clear", guard(h.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *orders.Handlers) {
	guard := middleware.Chain(rl.Limit, middleware.Authenticate)
	router.POST("/api/orders", guard(h.PlaceOrder))
	router.GET("/api/orders", guard(h.ListOrders))
	router.GET("/api/orders/:orderid", guard(h.GetOrder))
	router.GET("/api/orders/:orderid/receipt", guard(h.DownloadReceipt))
	router.GET("/api/orders/:orderid/ws", middleware.Authenticate(h.OrderStatusWS))
}
