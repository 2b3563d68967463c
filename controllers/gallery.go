package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateGalleryItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var item models.GalleryItem

		if err := c.ShouldBindJSON(&item); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&item); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}
		item.Normalize()

		id, err := s.Insert(ctx, "galleryitem", item)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error creating gallery item")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func GetAllGalleryItems(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		items, err := s.ListAll(ctx, "galleryitem")
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Failed to retrieve gallery items")
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
