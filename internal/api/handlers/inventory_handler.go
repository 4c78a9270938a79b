// backend-go/internal/api/handlers/inventory_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
)

type InventoryHandler struct {
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// statusFor maps the error taxonomy onto HTTP statuses: validation and
// not-found failures are the caller's fault (400), configuration and
// upstream failures are ours (500).
func statusFor(err error) int {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// GetInventory returns the full filtered item list plus the summary.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	inv, err := h.service.GetInventory(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetVariants returns the variants of a main product.
func (h *InventoryHandler) GetVariants(c *gin.Context) {
	variants, err := h.service.GetVariants(c.Request.Context(), c.Query("parentSku"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"variants": variants})
}

type classifyRequest struct {
	SKU      string `json:"sku"`
	Category string `json:"category"`
	ParentID string `json:"parentId"`
}

// Classify writes the category/parent block of one item row.
func (h *InventoryHandler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Classify(c.Request.Context(), req.SKU, req.Category, req.ParentID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type metaRequest struct {
	SKU            string      `json:"sku"`
	Category       string      `json:"category"`
	ParentID       string      `json:"parentId"`
	VariantOptions string      `json:"variantOptions"`
	PromoPrice     interface{} `json:"promoPrice"`
	PromoStart     string      `json:"promoStart"`
	PromoEnd       string      `json:"promoEnd"`
	Featured       *bool       `json:"featured"`
	Visible        *bool       `json:"visible"`
	SortOrder      interface{} `json:"sortOrder"`
}

// UpdateMeta writes the full metadata block of one item row.
func (h *InventoryHandler) UpdateMeta(c *gin.Context) {
	var req metaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	meta := inventory.MetaUpdate{
		Category:       req.Category,
		ParentID:       req.ParentID,
		VariantOptions: req.VariantOptions,
		PromoPrice:     req.PromoPrice,
		PromoStart:     req.PromoStart,
		PromoEnd:       req.PromoEnd,
		Featured:       req.Featured,
		Visible:        req.Visible,
		SortOrder:      req.SortOrder,
	}
	if err := h.service.UpdateMeta(c.Request.Context(), req.SKU, meta); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type imageRequest struct {
	SKU      string `json:"sku"`
	ImageURL string `json:"imageUrl"`
}

// UpdateImage writes the image URL cell of one item row.
func (h *InventoryHandler) UpdateImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.UpdateImage(c.Request.Context(), req.SKU, req.ImageURL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateItem appends a new product row.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req inventory.NewItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateItem(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sku": req.SKU})
}
