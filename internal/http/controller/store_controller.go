package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/payment"
	"github.com/iyhunko/storefront-search/internal/service"
)

// StoreController handles the cart, the wishlist, preferences and the search history.
type StoreController struct {
	storeService *service.StoreService
}

// NewStoreController creates a new StoreController with the given store service.
func NewStoreController(storeService *service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

// ItemRequest references a catalog product.
type ItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

// QuantityRequest sets the quantity of a cart line.
type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ProductResponse
	Quantity        int    `json:"quantity"`
	Subtotal        string `json:"subtotal"`
	DisplaySubtotal string `json:"display_subtotal"`
}

// CartResponse represents the cart with its totals.
type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	Count        int                `json:"count"`
	Total        string             `json:"total"`
	DisplayTotal string             `json:"display_total"`
}

func toCartResponse(cart model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		subtotal := item.Subtotal()
		items = append(items, CartItemResponse{
			ProductResponse: toProductResponse(item.Product),
			Quantity:        item.Quantity,
			Subtotal:        subtotal.StringFixed(2),
			DisplaySubtotal: payment.FormatAmount(subtotal),
		})
	}
	total := cart.Total()
	return CartResponse{
		Items:        items,
		Count:        cart.Count(),
		Total:        total.StringFixed(2),
		DisplayTotal: payment.FormatAmount(total),
	}
}

// WishlistResponse represents the wishlisted products.
type WishlistResponse struct {
	Items []ProductResponse `json:"items"`
}

func toWishlistResponse(wishlist model.Wishlist) WishlistResponse {
	return WishlistResponse{Items: toProductResponses(wishlist.Items)}
}

func (sc *StoreController) Cart(c *gin.Context) {
	cart, err := sc.storeService.Cart(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// AddToCart handles the HTTP POST request adding one unit of a product to the cart.
func (sc *StoreController) AddToCart(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := sc.storeService.AddToCart(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

func (sc *StoreController) UpdateQuantity(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := sc.storeService.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

func (sc *StoreController) RemoveFromCart(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	cart, err := sc.storeService.RemoveFromCart(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

// ClearCart empties the cart.
func (sc *StoreController) ClearCart(c *gin.Context) {
	if err := sc.storeService.ClearCart(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(model.Cart{}))
}

func (sc *StoreController) Wishlist(c *gin.Context) {
	wishlist, err := sc.storeService.Wishlist(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishlistResponse(wishlist))
}

// IsWishlisted reports whether the product is on the wishlist.
func (sc *StoreController) IsWishlisted(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	wishlisted, err := sc.storeService.IsWishlisted(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": id, "wishlisted": wishlisted})
}

func (sc *StoreController) AddToWishlist(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wishlist, err := sc.storeService.AddToWishlist(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishlistResponse(wishlist))
}

func (sc *StoreController) RemoveFromWishlist(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	wishlist, err := sc.storeService.RemoveFromWishlist(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWishlistResponse(wishlist))
}

func (sc *StoreController) Preferences(c *gin.Context) {
	prefs, err := sc.storeService.Preferences(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ToggleDarkMode flips the dark mode preference and returns the new value.
func (sc *StoreController) ToggleDarkMode(c *gin.Context) {
	darkMode, err := sc.storeService.ToggleDarkMode(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Preferences{DarkMode: darkMode})
}

func (sc *StoreController) RecentSearches(c *gin.Context) {
	searches, err := sc.storeService.RecentSearches(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recent_searches": searches})
}
