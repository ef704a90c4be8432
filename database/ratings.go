// ratings.go - Rating store: append-only app feedback and aggregates

package database

import (
	"errors"
	"time"

	"go-career-mentor-backend/models"
)

// ErrUnknownUser is returned by AddRating when the email references no user.
var ErrUnknownUser = errors.New("no user with that email")

// RatingRow is one rating joined with the submitter's full name.
type RatingRow struct {
	ID          uint      `gorm:"column:id" json:"id"`
	FullName    string    `gorm:"column:fullname" json:"fullname"`
	UserEmail   string    `gorm:"column:user_email" json:"user_email"`
	Rating      int       `gorm:"column:rating" json:"rating"`
	SubmittedAt time.Time `gorm:"column:submitted_at" json:"submitted_at"`
}

// AddRating appends one rating row for the given user. Repeated submissions
// by the same user create multiple rows; there is no dedup. The email must
// reference an existing user, otherwise ErrUnknownUser and nothing is written.
func AddRating(userEmail string, value int) error {
	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", userEmail).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUnknownUser
	}
	rating := models.Rating{UserEmail: userEmail, Rating: value}
	return DB.Create(&rating).Error
}

// ListRatings returns every rating joined with the user's full name,
// most recent first.
func ListRatings() ([]RatingRow, error) {
	var rows []RatingRow
	err := DB.Table("ratings").
		Select("ratings.id, users.fullname, ratings.user_email, ratings.rating, ratings.submitted_at").
		Joins("JOIN users ON users.email = ratings.user_email").
		Order("ratings.submitted_at DESC, ratings.id DESC").
		Scan(&rows).Error
	return rows, err
}

// AverageRating returns the mean rating and the number of ratings.
// With zero ratings it returns (0, 0, nil); callers report "no data"
// instead of surfacing an average.
func AverageRating() (float64, int64, error) {
	var count int64
	if err := DB.Model(&models.Rating{}).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	var avg float64
	if err := DB.Model(&models.Rating{}).Select("AVG(rating)").Scan(&avg).Error; err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
