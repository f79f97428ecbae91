// Package catalog exposes the menu endpoints: public reads for customers,
// admin mutations for staff.
package catalog

import (
	"strconv"

	"comedor/api/response"
	catalogapp "comedor/application/catalog"

	"github.com/gin-gonic/gin"
)

// Controller handles catalog HTTP requests.
type Controller struct {
	catalog *catalogapp.Service
}

// NewController creates the catalog controller.
func NewController(catalog *catalogapp.Service) *Controller {
	return &Controller{catalog: catalog}
}

// RegisterRoutes mounts the catalog routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("", c.ListProducts)
		productGroup.GET("/available", c.ListAvailable)
		productGroup.GET("/search", c.SearchProducts)
		productGroup.GET("/:id", c.GetProduct)
		productGroup.POST("", c.CreateProduct)
		productGroup.PUT("/:id", c.UpdateProduct)
		productGroup.DELETE("/:id", c.DeactivateProduct)
		productGroup.POST("/:id/restock", c.RestockProduct)
	}

	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", c.ListCategories)
		categoryGroup.POST("", c.CreateCategory)
		categoryGroup.GET("/:id/products", c.ListByCategory)
	}
}

// ListProducts returns every active product.
func (c *Controller) ListProducts(ctx *gin.Context) {
	resp, err := c.catalog.ListProducts(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "products retrieved")
}

// ListAvailable returns the products customers can order right now.
func (c *Controller) ListAvailable(ctx *gin.Context) {
	resp, err := c.catalog.ListAvailable(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "products retrieved")
}

// SearchProducts returns active products matching the "q" query parameter.
func (c *Controller) SearchProducts(ctx *gin.Context) {
	resp, err := c.catalog.SearchProducts(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "products retrieved")
}

// GetProduct returns one product by ID.
func (c *Controller) GetProduct(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid product id")
		return
	}

	resp, err := c.catalog.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "product retrieved")
}

// CreateProduct adds a menu entry.
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid product payload")
		return
	}

	resp, err := c.catalog.CreateProduct(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "product created")
}

// UpdateProduct replaces a product's editable attributes.
func (c *Controller) UpdateProduct(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid product id")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid product payload")
		return
	}

	resp, err := c.catalog.UpdateProduct(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "product updated")
}

// DeactivateProduct soft-deletes a product.
func (c *Controller) DeactivateProduct(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid product id")
		return
	}

	if err := c.catalog.DeactivateProduct(ctx.Request.Context(), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "product deactivated")
}

// RestockProduct credits stock back to a product.
func (c *Controller) RestockProduct(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid product id")
		return
	}

	var req catalogapp.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid restock payload")
		return
	}

	resp, err := c.catalog.RestockProduct(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "product restocked")
}

// ListCategories returns the active categories in display order.
func (c *Controller) ListCategories(ctx *gin.Context) {
	resp, err := c.catalog.ListCategories(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "categories retrieved")
}

// CreateCategory adds a menu category.
func (c *Controller) CreateCategory(ctx *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid category payload")
		return
	}

	resp, err := c.catalog.CreateCategory(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "category created")
}

// ListByCategory returns the active products of one category.
func (c *Controller) ListByCategory(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid category id")
		return
	}

	resp, err := c.catalog.ListByCategory(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "products retrieved")
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
