// rating.go - Defines the Rating model for app feedback

package models

import "time"

type Rating struct {
	ID          uint      `gorm:"primaryKey"`                             // Unique rating ID
	UserEmail   string    `gorm:"not null;index"`                         // Email of the user who rated
	User        User      `gorm:"foreignKey:UserEmail;references:Email"`  // Foreign key to users.email
	Rating      int       `gorm:"not null"`                               // Star rating, 1 to 5
	SubmittedAt time.Time `gorm:"autoCreateTime"`                         // When the rating was submitted
}
