package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateCollection(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var collection models.Collection

		if err := c.ShouldBindJSON(&collection); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&collection); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}
		collection.Normalize()

		id, err := s.Insert(ctx, "collection", collection)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error creating collection")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func GetAllCollections(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		collections, err := s.ListAll(ctx, "collection")
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Failed to retrieve collections")
			return
		}

		c.JSON(http.StatusOK, collections)
	}
}
