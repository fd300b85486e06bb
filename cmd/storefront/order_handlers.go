package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wollendesigns/storefront/internal/item"
	"github.com/wollendesigns/storefront/internal/order"
)

func createOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid json"})
			return
		}
		o, err := orders.CreateOrder(c.Request.Context(), req)
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, gin.H{
				"success": true,
				"message": "Order placed successfully!",
				"order":   o,
			})
		case errors.Is(err, order.ErrNotifyFailed):
			// The order is persisted; only the email failed.
			c.JSON(http.StatusCreated, gin.H{
				"success": true,
				"message": "Order placed, but the confirmation email could not be sent.",
				"order":   o,
			})
		case errors.Is(err, order.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, item.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "insufficient stock"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Order creation failed. Please try again later.",
			})
		}
	}
}

func listOrdersHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := orders.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		if out == nil {
			out = []order.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func updateOrderStatusHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid json"})
			return
		}
		o, err := orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Order status updated and customer notified via email.",
				"order":   o,
			})
		case errors.Is(err, order.ErrNotifyFailed):
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Order status updated, but the notification email could not be sent.",
				"order":   o,
			})
		case errors.Is(err, order.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order"})
		}
	}
}

func deleteOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := orders.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
		}
	}
}

func trackOrderHandler(orders *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Track(c.Request.Context(), c.Query("id"), c.Query("email"))
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
		case errors.Is(err, order.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		}
	}
}
