// admin.go - Admin dashboard queries: users, ratings and the average rating

package handlers

import (
	"go-career-mentor-backend/database"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminListUsers - Returns every registered user (id, fullname, email, role).
func AdminListUsers(c *gin.Context) {
	users, err := database.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// AdminListRatings - Returns every rating with the submitter's full name,
// most recent first.
func AdminListRatings(c *gin.Context) {
	ratings, err := database.ListRatings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// AdminAverageRating - Returns the mean of all ratings. With zero ratings it
// reports "no data" rather than an average (never NaN).
func AdminAverageRating(c *gin.Context) {
	avg, count, err := database.AverageRating()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count == 0 {
		c.JSON(http.StatusOK, gin.H{"count": 0, "message": "No ratings have been submitted yet."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count, "average": avg})
}
