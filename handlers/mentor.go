// mentor.go - AI career mentor endpoints: field suggestions, guidance, roadmap

package handlers

import (
	"go-career-mentor-backend/ai"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Indirection over the ai package so tests can stub the model.
var (
	suggestFields    = ai.SuggestFields
	generateGuidance = ai.Guidance
	generateRoadmap  = ai.Roadmap
)

type FieldsInput struct {
	Interests string `json:"interests" binding:"required"` // Free-text interests
}

type GuidanceInput struct {
	Interests string `json:"interests" binding:"required"` // Free-text interests
	Field     string `json:"field" binding:"required"`     // Chosen career field
}

type RoadmapInput struct {
	Field string `json:"field" binding:"required"` // Chosen career field
}

// SuggestFields - Suggests 4 career fields matching the user's interests.
func SuggestFields(c *gin.Context) {
	var input FieldsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields, err := suggestFields(c.Request.Context(), input.Interests)
	if err != nil { // Upstream model failure, not a client error
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fields": fields})
}

// Guidance - Generates the markdown career guide for a chosen field.
func Guidance(c *gin.Context) {
	var input GuidanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guide, err := generateGuidance(c.Request.Context(), input.Interests, input.Field)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"guidance": guide})
}

// Roadmap - Generates a 4-phase career roadmap, parsed into sections the
// page layer can render as expanders.
func Roadmap(c *gin.Context) {
	var input RoadmapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	phases, err := generateRoadmap(c.Request.Context(), input.Field)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phases": phases})
}
