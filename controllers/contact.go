package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"efmode-api-io/api/helper"
	"efmode-api-io/api/models"
	"efmode-api-io/api/store"
)

func CreateContactMessage(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var msg models.ContactMessage

		if err := c.ShouldBindJSON(&msg); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if validationErr := Validate.Struct(&msg); validationErr != nil {
			helper.HandleValidationError(c, validationErr)
			return
		}

		id, err := s.Insert(ctx, "contactmessage", msg)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "Error saving contact message")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
	}
}
