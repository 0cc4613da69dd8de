package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hariyo-app/hariyo/cache"
)

// registerAssets mounts the offline-cache proxy. Requests are resolved
// against the configured asset origin and served network-first with a
// cached fallback.
func registerAssets(router *gin.Engine, worker *cache.Worker, origin string) {
	origin = strings.TrimRight(origin, "/")

	router.GET("/assets/v1/*path", func(c *gin.Context) {
		if worker == nil || origin == "" {
			c.Status(http.StatusNotFound)
			return
		}

		url := origin + c.Param("path")
		result, err := worker.Fetch(c.Request.Context(), url)
		if err != nil {
			// No live response and no cached fallback: the network
			// error is final for this request
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		if result.FromCache {
			c.Header("X-Served-From", "cache")
		}
		c.Data(result.StatusCode, result.ContentType, result.Body)
	})
}
