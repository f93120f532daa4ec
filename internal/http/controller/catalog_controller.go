package controller

import (
	"fmt"
	"math"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/storefront-search/internal/catalog"
	"github.com/iyhunko/storefront-search/internal/model"
	"github.com/iyhunko/storefront-search/internal/repository"
	"github.com/iyhunko/storefront-search/internal/service"
)

// CatalogController handles HTTP requests for catalog reads, searches and rankings.
type CatalogController struct {
	catalogService *service.CatalogService
}

// NewCatalogController creates a new CatalogController with the given catalog service.
func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListProductsRequest represents the query parameters for listing products.
type ListProductsRequest struct {
	Limit    int32  `form:"limit"`
	Token    string `form:"token"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

// ListProductsResponse represents the response body for listing products.
type ListProductsResponse struct {
	Products      []ProductResponse `json:"products"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// ListProducts handles the HTTP GET request for listing products with pagination.
func (cc *CatalogController) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := repository.NewQuery()
	if err := query.ApplyPagination(req.Limit, req.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Category != "" {
		query.With(repository.CategoryField, req.Category)
	}
	if _, err := catalog.ParseSortOrder(req.Sort); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query.With(repository.SortField, req.Sort)

	products, next := cc.catalogService.ListProducts(c.Request.Context(), *query)

	response := ListProductsResponse{
		Products: toProductResponses(products),
	}
	if next != nil {
		response.NextPageToken = next.Encode()
	}

	c.JSON(http.StatusOK, response)
}

// GetProduct handles the HTTP GET request for one product.
func (cc *CatalogController) GetProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	product, err := cc.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (cc *CatalogController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": cc.catalogService.Categories()})
}

// maxQueryLength is the longest accepted search query in runes.
const maxQueryLength = 256

// SearchRequest is a search with optional result filtering. Live searches bind it
// from the query string, submitted searches from the body.
type SearchRequest struct {
	Query    string `form:"q" json:"query"`
	Category string `form:"category" json:"category"`
	Sort     string `form:"sort" json:"sort"`
}

// filter validates the request and returns its result filter.
func (r SearchRequest) filter() (catalog.Filter, error) {
	if utf8.RuneCountInString(r.Query) > maxQueryLength {
		return catalog.Filter{}, fmt.Errorf("query longer than %d characters", maxQueryLength)
	}
	order, err := catalog.ParseSortOrder(r.Sort)
	if err != nil {
		return catalog.Filter{}, err
	}
	return catalog.Filter{Category: model.Category(r.Category), Sort: order}, nil
}

// SearchResponse holds ranked search results.
type SearchResponse struct {
	Query    string            `json:"query"`
	Products []ProductResponse `json:"products"`
}

// Search handles live searches. They are not recorded in the history.
func (cc *CatalogController) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filter, err := req.filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products := cc.catalogService.Search(c.Request.Context(), req.Query, filter)
	c.JSON(http.StatusOK, SearchResponse{Query: req.Query, Products: toProductResponses(products)})
}

// SubmitSearch handles explicit searches and records them in the history.
func (cc *CatalogController) SubmitSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := req.filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := cc.catalogService.SubmitSearch(c.Request.Context(), req.Query, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Query: req.Query, Products: toProductResponses(products)})
}

func (cc *CatalogController) Trending(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(cc.catalogService.Trending(c.Request.Context()))})
}

// RecommendationsRequest represents the query parameters of the recommendations endpoint.
// A missing max_price leaves the range open.
type RecommendationsRequest struct {
	Category string   `form:"category" binding:"required"`
	MinPrice float64  `form:"min_price" binding:"gte=0"`
	MaxPrice *float64 `form:"max_price"`
}

func (cc *CatalogController) Recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priceRange := model.PriceRange{Min: req.MinPrice, Max: math.MaxFloat64}
	if req.MaxPrice != nil {
		priceRange.Max = *req.MaxPrice
	}

	products := cc.catalogService.Recommendations(c.Request.Context(), model.Category(req.Category), priceRange)
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

// PersonalizedRequest is the user profile to rank the catalog for.
// Omitting recent_searches uses the stored search history.
type PersonalizedRequest struct {
	Categories     []model.Category `json:"categories"`
	PriceRange     []float64        `json:"price_range" binding:"omitempty,len=2"`
	RecentSearches []string         `json:"recent_searches"`
}

func (cc *CatalogController) Personalized(c *gin.Context) {
	var req PersonalizedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := model.UserProfile{
		Categories:     req.Categories,
		RecentSearches: req.RecentSearches,
	}
	if len(req.PriceRange) == 2 {
		profile.PriceRange = model.PriceRange{Min: req.PriceRange[0], Max: req.PriceRange[1]}
	}

	products, err := cc.catalogService.Personalized(c.Request.Context(), profile)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}
