// Package order exposes the ordering endpoints.
package order

import (
	"strconv"

	"comedor/api/response"
	orderapp "comedor/application/order"

	"github.com/gin-gonic/gin"
)

// Controller handles order HTTP requests.
type Controller struct {
	orders *orderapp.Service
}

// NewController creates the order controller.
func NewController(orders *orderapp.Service) *Controller {
	return &Controller{orders: orders}
}

// RegisterRoutes mounts the order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.PlaceOrder)
		orderGroup.GET("/today", c.GetTodaysOrders)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.PUT("/:id/status", c.UpdateStatus)
	}
	router.GET("/users/:id/orders", c.GetUserOrders)
}

// PlaceOrder runs the order placement workflow.
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid order payload")
		return
	}

	resp, err := c.orders.PlaceOrder(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, resp, "order placed")
}

// GetOrder returns one hydrated order.
func (c *Controller) GetOrder(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid order id")
		return
	}

	resp, err := c.orders.GetOrder(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, resp, "order retrieved")
}

// UpdateStatus moves an order through the status machine.
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid order id")
		return
	}

	var req orderapp.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid status payload")
		return
	}

	resp, err := c.orders.UpdateStatus(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, resp, "order status updated")
}

// GetUserOrders returns a user's order history, newest first.
func (c *Controller) GetUserOrders(ctx *gin.Context) {
	userID, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid user id")
		return
	}

	resp, err := c.orders.GetUserOrders(ctx.Request.Context(), userID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, resp, "orders retrieved")
}

// GetTodaysOrders returns today's orders, optionally filtered by status via
// the "status" query parameter.
func (c *Controller) GetTodaysOrders(ctx *gin.Context) {
	if status := ctx.Query("status"); status != "" {
		resp, err := c.orders.GetOrdersByStatus(ctx.Request.Context(), status)
		if err != nil {
			response.HandleAppError(ctx, err)
			return
		}
		response.HandleSuccess(ctx, resp, "orders retrieved")
		return
	}

	resp, err := c.orders.GetTodaysOrders(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, resp, "orders retrieved")
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
