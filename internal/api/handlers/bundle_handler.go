// backend-go/internal/api/handlers/bundle_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/bundle"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

type BundleHandler struct {
	store *bundle.Store
}

func NewBundleHandler(store *bundle.Store) *BundleHandler {
	return &BundleHandler{store: store}
}

func (h *BundleHandler) List(c *gin.Context) {
	bundles, err := h.store.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bundles": bundles})
}

func (h *BundleHandler) Create(c *gin.Context) {
	var req domain.Bundle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bundle": created})
}

func (h *BundleHandler) Update(c *gin.Context) {
	var req domain.Bundle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bundle": updated})
}

func (h *BundleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bundleId": id})
}
