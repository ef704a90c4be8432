// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a registered account
	ID           uint   `gorm:"primaryKey"`              // Unique user ID (primary key)
	FullName     string `gorm:"column:fullname;not null"` // User's full name (cannot be null)
	Email        string `gorm:"unique;not null"`         // User's email (must be unique, cannot be null)
	PasswordHash string `gorm:"not null"`                // Hashed password (cannot be null, never plaintext)
	Role         string `gorm:"not null;default:'user'"` // User role (user/admin)
}
