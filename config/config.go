// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	DBPath        string // Path to the SQLite database file
	Port          string // Port the web server listens on
	JWTSecret     string // Secret key for JWT authentication
	AdminEmail    string // Reserved email for the seeded admin account
	AdminPassword string // Default password for the seeded admin account
	GeminiAPIKey  string // API key for the Gemini text-generation service
	JSearchAPIKey string // RapidAPI key for the JSearch job-search service
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present (ignored when missing)
	return &Config{
		DBPath:        getEnv("DB_PATH", "career.db"),              // Get DB path or use default
		Port:          getEnv("PORT", "8080"),                      // Get server port or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),         // Get JWT secret or use default
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),  // Reserved admin email
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),        // Documented default admin password
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),                // No default; mentor endpoints need it
		JSearchAPIKey: getEnv("JSEARCH_API_KEY", ""),               // No default; job search needs it
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
