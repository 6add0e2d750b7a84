package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingClampOnSave(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "rater")
	movie := createTestMovie(t, db, "clamped", false)

	low := Rating{UserID: user.ID, MovieID: movie.ID, Score: -5}
	require.NoError(t, db.Create(&low).Error)
	assert.Equal(t, RatingMin, low.Score)

	other := createTestUser(t, db, "rater2")
	high := Rating{UserID: other.ID, MovieID: movie.ID, Score: 99}
	require.NoError(t, db.Create(&high).Error)
	assert.Equal(t, RatingMax, high.Score)
}

func TestAverageRating(t *testing.T) {
	db := newTestDB(t)
	movie := createTestMovie(t, db, "rated", false)

	assert.Equal(t, float64(0), AverageRating(db, movie.ID), "no ratings yields zero")

	for i, score := range []int{8, 9, 10} {
		user := createTestUser(t, db, string(rune('a'+i))+"-rater")
		require.NoError(t, db.Create(&Rating{
			UserID: user.ID, MovieID: movie.ID, Score: score,
		}).Error)
	}
	assert.Equal(t, 9.0, AverageRating(db, movie.ID))
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	db := newTestDB(t)
	movie := createTestMovie(t, db, "rounded", false)

	for i, score := range []int{7, 8, 8} {
		user := createTestUser(t, db, string(rune('a'+i))+"-round")
		require.NoError(t, db.Create(&Rating{
			UserID: user.ID, MovieID: movie.ID, Score: score,
		}).Error)
	}
	// 23/3 = 7.666... rounds to 7.7
	assert.Equal(t, 7.7, AverageRating(db, movie.ID))
}

func TestDuplicateRatingRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dup")
	movie := createTestMovie(t, db, "dup-movie", false)

	require.NoError(t, db.Create(&Rating{UserID: user.ID, MovieID: movie.ID, Score: 5}).Error)
	err := db.Create(&Rating{UserID: user.ID, MovieID: movie.ID, Score: 7}).Error
	assert.Error(t, err, "second rating for the same pair must fail")
}
