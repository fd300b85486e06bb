package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wollendesigns/storefront/internal/user"
)

func registerHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid json"})
			return
		}
		u, err := users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, user.ErrAlreadyExist) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "registration failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User registered successfully",
			"user":    u,
		})
	}
}

func loginHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid json"})
			return
		}
		u, token, err := users.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
			case errors.Is(err, user.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "login failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
			"user":    u,
		})
	}
}
