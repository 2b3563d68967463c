package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var product models.Product

		// Bind and validate the request body
		if err := c.ShouldBindJSON(&product); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&product); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}
		product.Normalize()

		id, err := s.Insert(ctx, "product", product)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error creating product")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func GetAllProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		products, err := s.ListAll(ctx, "product")
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Failed to retrieve products")
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
