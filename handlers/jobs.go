// jobs.go - Live job search endpoint

package handlers

import (
	"fmt"
	"go-career-mentor-backend/jobs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Indirection over the jobs package so tests can stub the API.
var searchJobs = jobs.Search

type JobSearchInput struct {
	Career   string `json:"career" binding:"required"` // Career or job title
	Location string `json:"location"`                  // Optional; defaults to USA
}

// SearchJobs - Queries the job-search service for live postings and returns
// them reshaped for the dashboard table.
func SearchJobs(c *gin.Context) {
	var input JobSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Location == "" {
		input.Location = "USA"
	}

	query := fmt.Sprintf("%s in %s", input.Career, input.Location)
	listings, err := searchJobs(c.Request.Context(), query)
	if err != nil { // Timeout or upstream failure; report it, never hang
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(listings), "jobs": listings})
}
