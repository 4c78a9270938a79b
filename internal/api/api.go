// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/api/handlers"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/api/middleware"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/bundle"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/config"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/inventory"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/storage"
)

type Services struct {
	Inventory *inventory.Service
	Bundles   *bundle.Store
	Storage   storage.ObjectStorage
}

func NewRouter(services *Services, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(cfg.Server.AllowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	// Health check stays outside the credential gate.
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.BasicAuth(cfg.Auth.AdminUser, cfg.Auth.AdminPass))

	if services != nil {
		if services.Inventory != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.Inventory)
			apiGroup.GET("/inventory", inventoryHandler.GetInventory)
			apiGroup.GET("/variants", inventoryHandler.GetVariants)

			itemsGroup := apiGroup.Group("/items")
			{
				itemsGroup.POST("", inventoryHandler.CreateItem)
				itemsGroup.POST("/classify", inventoryHandler.Classify)
				itemsGroup.POST("/meta", inventoryHandler.UpdateMeta)
				itemsGroup.POST("/image", inventoryHandler.UpdateImage)
			}
		}

		if services.Bundles != nil {
			bundleHandler := handlers.NewBundleHandler(services.Bundles)
			bundlesGroup := apiGroup.Group("/bundles")
			{
				bundlesGroup.GET("", bundleHandler.List)
				bundlesGroup.POST("", bundleHandler.Create)
				bundlesGroup.PUT("/:id", bundleHandler.Update)
				bundlesGroup.DELETE("/:id", bundleHandler.Delete)
			}
		}

		uploadHandler := handlers.NewUploadHandler(services.Storage)
		apiGroup.POST("/uploads/image", uploadHandler.UploadImage)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
