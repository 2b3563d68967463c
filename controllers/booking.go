package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateBooking(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var booking models.Booking

		if err := c.ShouldBindJSON(&booking); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&booking); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}

		id, err := s.Insert(ctx, "booking", booking)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error creating booking")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id, "status": "scheduled"})
	}
}
