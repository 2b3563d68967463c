package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/configs"
	"efmode-api-io/api/store"
)

// Root is the liveness probe.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "EFMODE API running"})
	}
}

// TestDatabase reports best-effort database connectivity. It must never
// return an error status; every failure is folded into the status text.
func TestDatabase(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		response := gin.H{
			"backend":           "running",
			"database":          "not available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "not connected",
			"collections":       []string{},
		}

		if s == nil {
			c.JSON(http.StatusOK, response)
			return
		}

		response["database"] = "available"
		if configs.LoadEnvFor("DATABASE_URL") != "" {
			response["database_url"] = "set"
		} else {
			response["database_url"] = "not set"
		}
		response["database_name"] = configs.LoadEnvOr("DATABASE_NAME", "unknown")

		names, err := s.CollectionNames(ctx, 10)
		if err != nil {
			response["database"] = "connected but error: " + truncate(err.Error(), 80)
		} else {
			response["collections"] = names
			response["database"] = "connected and working"
			response["connection_status"] = "connected"
		}

		c.JSON(http.StatusOK, response)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
