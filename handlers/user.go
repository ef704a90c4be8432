// user.go - Handles user registration, login and logout

package handlers // Declares the package name

import ( // Import required packages
	"go-career-mentor-backend/config"   // Project config
	"go-career-mentor-backend/database" // Credential store
	"net/http"                          // HTTP status codes
	"time"                              // For token expiration

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
)

type RegisterInput struct { // Struct for registration input
	FullName string `json:"fullname" binding:"required"` // Full name (required)
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := database.RegisterUser(input.FullName, input.Email, input.Password); err != nil {
		if err == database.ErrEmailTaken { // Duplicate email is recoverable, not a server fault
			c.JSON(http.StatusConflict, gin.H{"error": "This email is already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account created! Please proceed to login."})
}

func Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	identity, err := database.VerifyUser(input.Email, input.Password)
	if err != nil { // Storage failure, not a credential mismatch
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if identity == nil { // No match: unknown email or wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// JWT generation: the token carries the whole session identity, so the
	// client holds its session state instead of an ambient server-side dict.
	cfg := config.Load() // Load config for JWT secret
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  identity.ID,
		"fullname": identity.FullName,
		"email":    identity.Email,
		"role":     identity.Role,
		"exp":      time.Now().Add(time.Hour * 72).Unix(), // Session expiry (72 hours)
	})
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret)) // Sign token
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":    tokenString,
		"fullname": identity.FullName,
		"role":     identity.Role,
	})
}

// Logout - The session lives in the signed token held by the client, so
// logging out means discarding it. This endpoint exists so the page layer
// has an explicit transition to call; there is no partial logout.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out. Discard the session token."})
}
