package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/storefront-search/internal/http/controller"
	"github.com/iyhunko/storefront-search/internal/http/middleware"
)

// Controllers groups the handlers mounted by InitRouter.
type Controllers struct {
	Base     *controller.Controller
	Catalog  *controller.CatalogController
	Store    *controller.StoreController
	Checkout *controller.CheckoutController
}

// InitRouter mounts every endpoint on server. Search endpoints are throttled by
// searchLimiter when it is not nil.
func InitRouter(server *gin.Engine, ctrs Controllers, searchLimiter *middleware.RateLimiter) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery(), middleware.Logger(), middleware.CORS())

	server.GET("/ping", ctrs.Base.Ping)

	products := server.Group("/products")
	{
		products.GET("", ctrs.Catalog.ListProducts)
		products.GET("/:id", ctrs.Catalog.GetProduct)
	}
	server.GET("/categories", ctrs.Catalog.Categories)

	search := server.Group("/search")
	if searchLimiter != nil {
		search.Use(searchLimiter.Middleware())
	}
	{
		search.GET("", ctrs.Catalog.Search)
		search.POST("", ctrs.Catalog.SubmitSearch)
		search.GET("/recent", ctrs.Store.RecentSearches)
	}

	server.GET("/trending", ctrs.Catalog.Trending)
	server.GET("/recommendations", ctrs.Catalog.Recommendations)
	server.POST("/recommendations/personalized", ctrs.Catalog.Personalized)

	cart := server.Group("/cart")
	{
		cart.GET("", ctrs.Store.Cart)
		cart.DELETE("", ctrs.Store.ClearCart)
		cart.POST("/items", ctrs.Store.AddToCart)
		cart.PATCH("/items/:id", ctrs.Store.UpdateQuantity)
		cart.DELETE("/items/:id", ctrs.Store.RemoveFromCart)
	}

	wishlist := server.Group("/wishlist")
	{
		wishlist.GET("", ctrs.Store.Wishlist)
		wishlist.GET("/items/:id", ctrs.Store.IsWishlisted)
		wishlist.POST("/items", ctrs.Store.AddToWishlist)
		wishlist.DELETE("/items/:id", ctrs.Store.RemoveFromWishlist)
	}

	server.GET("/preferences", ctrs.Store.Preferences)
	server.POST("/preferences/dark-mode/toggle", ctrs.Store.ToggleDarkMode)

	server.POST("/checkout", ctrs.Checkout.Checkout)

	return server
}
