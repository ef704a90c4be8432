// users.go - Credential store: registration, verification and user listing

package database

import (
	"errors"
	"strings"

	"go-career-mentor-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned by RegisterUser when the email is already registered.
// Callers treat it as a recoverable failure, not a crash.
var ErrEmailTaken = errors.New("email already registered")

// Identity is the session-scoped identity established by a successful login.
type Identity struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserRow is the admin-facing projection of a user (no password hash).
type UserRow struct {
	ID       uint   `gorm:"column:id" json:"id"`
	FullName string `gorm:"column:fullname" json:"fullname"`
	Email    string `gorm:"column:email" json:"email"`
	Role     string `gorm:"column:role" json:"role"`
}

// dummyHash is compared against when the email is unknown, so a miss costs
// roughly the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder"), bcrypt.DefaultCost)

// RegisterUser hashes the password and creates a new user with the default
// role. A duplicate email yields ErrEmailTaken; any other storage failure
// propagates as-is.
func RegisterUser(fullName, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{FullName: fullName, Email: email, PasswordHash: string(hash)}
	if err := DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// VerifyUser checks the supplied credentials against the stored hash.
// On a match it returns the identity; on a miss it returns (nil, nil).
// Only a storage failure produces a non-nil error.
func VerifyUser(email, password string) (*Identity, error) {
	var user models.User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password)) // burn a compare
			return nil, nil
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil // Wrong password
	}
	return &Identity{ID: user.ID, FullName: user.FullName, Email: user.Email, Role: user.Role}, nil
}

// ListUsers returns every registered user for the admin dashboard.
// Full scan, no pagination: fine at this scale.
func ListUsers() ([]UserRow, error) {
	var rows []UserRow
	err := DB.Model(&models.User{}).
		Select("id, fullname, email, role").
		Order("id").
		Scan(&rows).Error
	return rows, err
}
