// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract the session identity (user ID, email) from token claims
// 4. Store the identity in context for handlers
//
// Authorization Flow (Admin):
// 1. Run authentication middleware first
// 2. Query database for the user's current role
// 3. Allow/deny access based on role

package middleware // Declares the package name

import (
	"go-career-mentor-backend/config"   // Project config (for JWT secret)
	"go-career-mentor-backend/database" // Database connection (for role checks)
	"go-career-mentor-backend/models"   // User model (for role checking)
	"net/http"                          // HTTP status codes (401, 403, etc.)
	"strings"                           // String operations (for header parsing)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// AuthMiddleware - Returns a Gin middleware function for JWT authentication.
// Validates the "Bearer <token>" header and stores the session identity
// (user_id, email, fullname, role claims) in the Gin context, so handlers
// never touch the token themselves.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		// STEP 2: Parse JWT token
		tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
		cfg := config.Load()                              // Load config for JWT secret
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil // Provide secret key for validation
		})
		if err != nil || !token.Valid { // If token is invalid or expired
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// STEP 3: Extract the session identity from claims and store in context.
		// Subsequent handlers read these instead of re-parsing the token.
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", userID) // Store user ID in Gin context
			}
			if email, exists := claims["email"]; exists {
				c.Set("email", email) // Store email (used by the rating endpoint)
			}
			if fullname, exists := claims["fullname"]; exists {
				c.Set("fullname", fullname)
			}
		}

		c.Next() // Continue to next handler (authentication successful)
	}
}

// AdminMiddleware - Returns a Gin middleware function for admin access control.
// Runs AuthMiddleware first, then checks the user's role in the database.
// The role is re-read from the database rather than trusted from the token,
// so the database stays the source of truth.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Run the standard authentication middleware first
		AuthMiddleware()(c) // Call the auth middleware on the same context
		if c.IsAborted() {
			return // Exit early - authentication failed
		}

		// STEP 2: Extract user ID from context (set by AuthMiddleware)
		userIDInterface, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in token"})
			return
		}

		// STEP 3: Convert user ID to uint (JWT numbers are stored as float64)
		userID, ok := userIDInterface.(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID format"})
			return
		}

		// STEP 4: Query database to get user details and check role
		var user models.User
		if err := database.DB.First(&user, uint(userID)).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		// STEP 5: Only users with role="admin" can access admin endpoints
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}
