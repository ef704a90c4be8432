// user_test.go - Automated tests for user registration and login handlers
// Run with: go test ./...

package handlers

import (
	"bytes"                               // For building request bodies
	"encoding/json"                       // For encoding/decoding JSON
	"go-career-mentor-backend/database"   // Database connection
	"net/http"                            // HTTP status codes
	"net/http/httptest"                   // HTTP test helpers
	"os"                                  // For file operations
	"testing"                             // Go's testing package

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/assert" // For assertions
)

// setupTestDB removes any existing test DB and creates a new one for each test run
func setupTestDB() {
	_ = os.Remove("test.db")       // Remove old test DB if exists
	database.Connect("test.db")    // Connect, migrate and seed the admin
}

// setupRouter returns a Gin engine with the public routes for testing
func setupRouter() *gin.Engine {
	r := gin.Default()            // New Gin router
	r.POST("/register", Register) // Register endpoint
	r.POST("/login", Login)       // Login endpoint
	return r
}

// TestRegisterAndLogin tests user registration and login
func TestRegisterAndLogin(t *testing.T) {
	setupTestDB()           // Prepare test DB
	router := setupRouter() // Prepare router

	// --- Test registration ---
	reg := RegisterInput{
		FullName: "Alice",
		Email:    "alice@x.com",
		Password: "pw123",
	}
	body, _ := json.Marshal(reg)                                          // Encode input as JSON
	w := httptest.NewRecorder()                                           // Record HTTP response
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body)) // Build request
	req.Header.Set("Content-Type", "application/json")                    // Set header
	router.ServeHTTP(w, req)                                              // Serve request
	assert.Equal(t, 200, w.Code)                                          // Assert success

	// --- Test login ---
	login := LoginInput{
		Email:    "alice@x.com",
		Password: "pw123",
	}
	body, _ = json.Marshal(login)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code) // Assert success

	// The response carries the session identity and a token
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Alice", resp["fullname"])
	assert.Equal(t, "user", resp["role"])
	assert.NotEmpty(t, resp["token"])

	// --- Test login with wrong password ---
	login.Password = "wrongpass"
	body, _ = json.Marshal(login)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code) // Should be unauthorized
}

// TestRegisterDuplicateEmail tests that a second registration with the same
// email is rejected with a conflict, not a server error
func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	reg := RegisterInput{
		FullName: "Alice",
		Email:    "alice@x.com",
		Password: "pw123",
	}
	body, _ := json.Marshal(reg)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	// Same email again
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 409, w.Code) // Conflict, recoverable

	// Exactly one row for that email exists afterward
	users, err := database.ListUsers()
	assert.NoError(t, err)
	matches := 0
	for _, u := range users {
		if u.Email == "alice@x.com" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

// TestRegisterMissingFields tests that incomplete input is a 400
func TestRegisterMissingFields(t *testing.T) {
	setupTestDB()
	router := setupRouter()

	body := []byte(`{"email": "alice@x.com"}`) // No fullname, no password
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}
