package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wollendesigns/storefront/internal/config"
	"github.com/wollendesigns/storefront/internal/httpx"
	"github.com/wollendesigns/storefront/internal/item"
	"github.com/wollendesigns/storefront/internal/order"
	"github.com/wollendesigns/storefront/internal/user"
)

func newRouter(cfg config.Config, users *user.Service, items item.Repository, orders *order.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.Static("/uploads", cfg.UploadDir)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", registerHandler(users))
		auth.POST("/login", loginHandler(users))
	}

	api := r.Group("/api")
	{
		api.GET("/items", listItemsHandler(items))
		api.POST("/orders", createOrderHandler(orders))
		api.GET("/orders/track", trackOrderHandler(orders))
	}

	admin := r.Group("/api", authRequired(users), adminOnly())
	{
		admin.POST("/items", addItemHandler(items, cfg.UploadDir))
		admin.PUT("/items/:id", updateItemHandler(items, cfg.UploadDir))
		admin.DELETE("/items/:id", deleteItemHandler(items, cfg.UploadDir))

		admin.GET("/orders", listOrdersHandler(orders))
		admin.PUT("/orders/:id", updateOrderStatusHandler(orders))
		admin.DELETE("/orders/:id", deleteOrderHandler(orders))
	}

	return r
}

const userKey = "currentUser"

func authRequired(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		u, err := users.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"success": false, "message": "authentication required"})
			return
		}
		c.Set(userKey, u)
		c.Next()
	}
}

func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(userKey)
		if !ok || !v.(*user.User).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"success": false, "message": "admin access required"})
			return
		}
		c.Next()
	}
}
