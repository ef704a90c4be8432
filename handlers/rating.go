// rating.go - Handles app rating submission

package handlers

import (
	"go-career-mentor-backend/database"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RatingInput struct { // Struct for rating input
	Rating int `json:"rating" binding:"required,min=1,max=5"` // Star count, 1 to 5
}

// SubmitRating - Appends a rating for the logged-in user. The email comes
// from the authenticated session, never from the request body, so a user can
// only rate as themselves. Repeat submissions are allowed and each one is a
// new row.
func SubmitRating(c *gin.Context) {
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil { // Rejects missing or out-of-range values
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, exists := c.Get("email") // Set by AuthMiddleware from the token
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no email in session"})
		return
	}
	userEmail, ok := email.(string)
	if !ok || userEmail == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no email in session"})
		return
	}

	if err := database.AddRating(userEmail, input.Rating); err != nil {
		if err == database.ErrUnknownUser { // Token refers to an account that no longer exists
			c.JSON(http.StatusNotFound, gin.H{"error": "no account for this session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your rating!"})
}
