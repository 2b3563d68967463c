package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateReview(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var review models.Review

		if err := c.ShouldBindJSON(&review); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&review); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}

		id, err := s.Insert(ctx, "review", review)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error creating review")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func GetAllReviews(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reviews, err := s.ListAll(ctx, "review")
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Failed to retrieve reviews")
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}
