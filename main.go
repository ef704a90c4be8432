// main.go - Entry point for the career mentor backend server

package main // Declares the package name

import ( // Import required packages
	"go-career-mentor-backend/ai"         // Gemini client for mentor endpoints
	"go-career-mentor-backend/config"     // Project config management
	"go-career-mentor-backend/database"   // Database connection and setup
	"go-career-mentor-backend/handlers"   // HTTP handlers for API endpoints
	"go-career-mentor-backend/jobs"       // JSearch job-search client
	"go-career-mentor-backend/middleware" // Middleware (authentication, admin gate)
	"log"                                 // Logging

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB path, JWT secret, API keys)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database and seed the admin
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}
	if cfg.GeminiAPIKey != "" {
		if err := ai.Connect(cfg.GeminiAPIKey); err != nil { // Connect to the Gemini API
			log.Fatal("Gemini connection error: ", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set; mentor endpoints will return errors")
	}
	jobs.Configure(cfg.JSearchAPIKey) // Set the JSearch API key

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	// Public routes (no authentication required)
	r.POST("/register", handlers.Register) // Public route: user registration
	r.POST("/login", handlers.Login)       // Public route: user login

	// Protected routes (require JWT authentication)
	api := r.Group("/api")               // Create a route group for protected endpoints
	api.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		api.POST("/logout", handlers.Logout)                 // Protected: end the session
		api.POST("/rating", handlers.SubmitRating)           // Protected: submit an app rating
		api.POST("/mentor/fields", handlers.SuggestFields)   // Protected: suggest career fields
		api.POST("/mentor/guidance", handlers.Guidance)      // Protected: generate a career guide
		api.POST("/mentor/roadmap", handlers.Roadmap)        // Protected: generate a career roadmap
		api.POST("/jobs/search", handlers.SearchJobs)        // Protected: search live job postings
	}

	// Admin routes (require JWT authentication + admin role)
	admin := r.Group("/api/admin")          // Route group for admin-only endpoints
	admin.Use(middleware.AdminMiddleware()) // Auth + role check against the database
	{
		admin.GET("/users", handlers.AdminListUsers)             // Admin: list registered users
		admin.GET("/ratings", handlers.AdminListRatings)         // Admin: list all ratings
		admin.GET("/ratings/average", handlers.AdminAverageRating) // Admin: average rating
	}

	// STEP 3: Start the web server
	r.Run(":" + cfg.Port) // Start the web server
}
