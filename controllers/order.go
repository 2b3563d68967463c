package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var order models.Order

		if err := c.ShouldBindJSON(&order); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&order); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}
		order.Normalize()

		id, err := s.Insert(ctx, "order", order)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error creating order")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id, "status": "confirmed"})
	}
}
