// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-career-mentor-backend/config" // Project config
	"go-career-mentor-backend/models" // User and Rating models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error
	// _foreign_keys=on makes SQLite enforce the ratings -> users reference
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true, // Map driver errors to gorm sentinels (e.g. duplicate key)
	})
	if err != nil {
		return err
	}

	// Auto-migrate the User and Rating models (create tables if needed)
	if err := DB.AutoMigrate(&models.User{}, &models.Rating{}); err != nil {
		return err
	}

	// Seed the default admin account (idempotent)
	return seedAdmin()
}

// seedAdmin - Inserts the reserved admin account if it does not exist yet.
// Safe to call on every process start: keyed on the reserved admin email,
// so repeated starts never duplicate the row.
func seedAdmin() error {
	cfg := config.Load() // Load configuration for the reserved admin identity

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Admin already seeded
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName:     "Admin User",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	return DB.Create(&admin).Error
}
