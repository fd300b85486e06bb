package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wollendesigns/storefront/internal/item"
)

func listItemsHandler(items item.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := items.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch items"})
			return
		}
		if out == nil {
			out = []item.Item{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func addItemHandler(items item.Repository, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req item.CreateItemRequest
		if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name is required"})
			return
		}
		price := decimal.Zero
		if req.Price != "" {
			p, err := decimal.NewFromString(req.Price)
			if err != nil || p.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price must be a non-negative number"})
				return
			}
			price = p
		}
		if req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "stock must be non-negative"})
			return
		}

		image, err := saveUpload(c, uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "image upload failed"})
			return
		}

		it := &item.Item{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			Price:       price,
			Stock:       req.Stock,
			Image:       image,
		}
		if err := items.Create(c.Request.Context(), it); err != nil {
			removeUpload(uploadDir, image)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error adding item"})
			return
		}
		c.JSON(http.StatusCreated, it)
	}
}

func updateItemHandler(items item.Repository, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		existing, err := items.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, item.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error updating item"})
			return
		}

		var req item.UpdateItemRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
			return
		}
		updatePrice := false
		price := existing.Price
		if req.Price != "" {
			p, err := decimal.NewFromString(req.Price)
			if err != nil || p.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price must be a non-negative number"})
				return
			}
			price = p
			updatePrice = true
		}
		// An omitted stock field leaves inventory alone; only an explicit
		// value writes it.
		updateStock := false
		stock := existing.Stock
		if req.Stock != "" {
			n, err := strconv.Atoi(req.Stock)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "stock must be a non-negative integer"})
				return
			}
			stock = n
			updateStock = true
		}

		// A replacement image retires the old file.
		image, err := saveUpload(c, uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "image upload failed"})
			return
		}
		if image != "" && existing.Image != "" {
			removeUpload(uploadDir, existing.Image)
		}

		it := &item.Item{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Price:       price,
			Stock:       stock,
			Image:       image,
		}
		if err := items.Update(c.Request.Context(), it, updatePrice, updateStock); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error updating item"})
			return
		}
		updated, err := items.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error updating item"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteItemHandler(items item.Repository, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		existing, err := items.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, item.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error deleting item"})
			return
		}
		ok, err := items.Delete(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error deleting item"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "item not found"})
			return
		}
		if existing.Image != "" {
			removeUpload(uploadDir, existing.Image)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item deleted successfully"})
	}
}

// saveUpload stores the optional "image" form file under uploadDir with a
// fresh name and returns its public path, or "" when no file was sent.
func saveUpload(c *gin.Context, uploadDir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", nil // no usable file attached
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func removeUpload(uploadDir, publicPath string) {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok || rel == "" {
		return
	}
	if err := os.Remove(filepath.Join(uploadDir, filepath.Base(rel))); err != nil && !os.IsNotExist(err) {
		log.Printf("[items] remove image %s: %v", publicPath, err)
	}
}
