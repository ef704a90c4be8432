// ratings_test.go - Tests for the rating store and aggregates

package database

import (
	"os"
	"testing"

	"go-career-mentor-backend/models"

	"github.com/stretchr/testify/assert"
)

func setupRatingTestDB(t *testing.T) {
	_ = os.Remove("test_ratings.db")
	if err := Connect("test_ratings.db"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := RegisterUser("Alice", "alice@x.com", "pw123"); err != nil {
		t.Fatalf("register: %v", err)
	}
}

// TestAddRating verifies a rating for an existing user appends exactly one
// row, joined with the user's full name in the listing.
func TestAddRating(t *testing.T) {
	setupRatingTestDB(t)

	assert.NoError(t, AddRating("alice@x.com", 4))

	rows, err := ListRatings()
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "Alice", rows[0].FullName)
		assert.Equal(t, "alice@x.com", rows[0].UserEmail)
		assert.Equal(t, 4, rows[0].Rating)
	}
}

// TestAddRatingUnknownUser verifies referential integrity: no matching user
// means ErrUnknownUser and no orphan row.
func TestAddRatingUnknownUser(t *testing.T) {
	setupRatingTestDB(t)

	assert.ErrorIs(t, AddRating("nobody@example.com", 5), ErrUnknownUser)

	var count int64
	DB.Model(&models.Rating{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

// TestListRatingsOrder verifies most-recent-first ordering: the newest
// submission comes back first.
func TestListRatingsOrder(t *testing.T) {
	setupRatingTestDB(t)

	assert.NoError(t, AddRating("alice@x.com", 3))
	assert.NoError(t, AddRating("alice@x.com", 5)) // Newest

	rows, err := ListRatings()
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, 5, rows[0].Rating)
		assert.Equal(t, 3, rows[1].Rating)
	}
}

// TestAverageRating verifies the mean over {5,4,3} is 4.0 and that repeat
// ratings from one user all count.
func TestAverageRating(t *testing.T) {
	setupRatingTestDB(t)

	for _, v := range []int{5, 4, 3} {
		assert.NoError(t, AddRating("alice@x.com", v))
	}

	avg, count, err := AverageRating()
	assert.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

// TestAverageRatingEmpty verifies zero ratings degrade to a "no data"
// result, not an arithmetic error.
func TestAverageRatingEmpty(t *testing.T) {
	setupRatingTestDB(t)

	avg, count, err := AverageRating()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)
	assert.EqualValues(t, 0, avg)
}
