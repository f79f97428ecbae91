// Package user exposes the account endpoints.
package user

import (
	"strconv"

	"comedor/api/response"
	userapp "comedor/application/user"

	"github.com/gin-gonic/gin"
)

// Controller handles account HTTP requests.
type Controller struct {
	users *userapp.Service
}

// NewController creates the user controller.
func NewController(users *userapp.Service) *Controller {
	return &Controller{users: users}
}

// RegisterRoutes mounts the account routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/register", c.Register)
	router.POST("/auth/login", c.Login)
	router.GET("/auth/email-exists", c.EmailExists)

	userGroup := router.Group("/users")
	{
		userGroup.GET("/:id", c.GetUser)
		userGroup.PUT("/:id", c.UpdateProfile)
		userGroup.GET("/:id/addresses", c.ListAddresses)
		userGroup.POST("/:id/addresses", c.AddAddress)
	}
}

// Register creates a customer account.
func (c *Controller) Register(ctx *gin.Context) {
	var req userapp.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid registration payload")
		return
	}

	resp, err := c.users.Register(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "user registered")
}

// Login verifies credentials and returns the session token.
func (c *Controller) Login(ctx *gin.Context) {
	var req userapp.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid login payload")
		return
	}

	resp, err := c.users.Login(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "login successful")
}

// EmailExists reports whether the "email" query parameter is already taken.
// The registration form uses it for inline validation.
func (c *Controller) EmailExists(ctx *gin.Context) {
	exists, err := c.users.EmailExists(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, gin.H{"exists": exists}, "email checked")
}

// GetUser returns one account.
func (c *Controller) GetUser(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid user id")
		return
	}

	resp, err := c.users.GetUser(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "user retrieved")
}

// UpdateProfile replaces the editable profile attributes.
func (c *Controller) UpdateProfile(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid user id")
		return
	}

	var req userapp.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid profile payload")
		return
	}

	resp, err := c.users.UpdateProfile(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "profile updated")
}

// ListAddresses returns the account's delivery addresses.
func (c *Controller) ListAddresses(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid user id")
		return
	}

	resp, err := c.users.ListAddresses(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "addresses retrieved")
}

// AddAddress stores a delivery address for the account.
func (c *Controller) AddAddress(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.HandleBindingError(ctx, err, "invalid user id")
		return
	}

	var req userapp.CreateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleBindingError(ctx, err, "invalid address payload")
		return
	}

	resp, err := c.users.AddAddress(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "address added")
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
