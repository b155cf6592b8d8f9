package handlers

import (
	"net/http"

	"lustrio/middleware"
	"lustrio/models"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler handles POST /users.
func (hb *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Users.RegisterUser(c.Request.Context(), in)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SignInUserHandler handles PUT /users, upserting by email.
func (hb *HandlerBundle) SignInUserHandler(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Users.SignInUser(c.Request.Context(), in)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PromoteAdminHandler handles PUT /users/admin. IdentityMiddleware must run
// first; the service decides whether the caller may promote.
func (hb *HandlerBundle) PromoteAdminHandler(c *gin.Context) {
	var req models.AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Users.PromoteToAdmin(c.Request.Context(), middleware.Identity(c), req.Email)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// IsAdminHandler handles GET /users/:email.
func (hb *HandlerBundle) IsAdminHandler(c *gin.Context) {
	status, err := hb.Users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
