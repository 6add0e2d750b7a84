package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordViewAppendsAndBumpsCounter(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "viewer")
	movie := createTestMovie(t, db, "watched", false)

	require.NoError(t, RecordView(db, movie.ID, &user.ID, "10.0.0.1"))
	require.NoError(t, RecordView(db, movie.ID, &user.ID, "10.0.0.1"))
	require.NoError(t, RecordView(db, movie.ID, nil, "10.0.0.2"))

	var views int64
	db.Model(&MovieView{}).Where("movie_id = ?", movie.ID).Count(&views)
	assert.Equal(t, int64(3), views, "repeat views append, never deduplicate")

	var fresh Movie
	require.NoError(t, db.First(&fresh, movie.ID).Error)
	assert.Equal(t, int64(3), fresh.ViewsCount)
}

func TestViewStats(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	movie := createTestMovie(t, db, "analyzed", false)

	for _, v := range []MovieView{
		{MovieID: movie.ID, UserID: &alice.ID, DurationWatched: 100},
		{MovieID: movie.ID, UserID: &alice.ID, DurationWatched: 200},
		{MovieID: movie.ID, UserID: &bob.ID, DurationWatched: 300},
		{MovieID: movie.ID, DurationWatched: 400}, // anonymous
	} {
		view := v
		require.NoError(t, db.Create(&view).Error)
	}

	stats, err := ViewStats(db, movie.ID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalViews)
	assert.Equal(t, int64(2), stats.UniqueUsers, "anonymous views do not count as users")
	assert.Equal(t, 250.0, stats.AvgWatchSecs)
}

func TestFavoriteAddRemove(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "fan")
	movie := createTestMovie(t, db, "liked", false)

	require.NoError(t, AddFavorite(db, user.ID, movie.ID))
	var fresh Movie
	require.NoError(t, db.First(&fresh, movie.ID).Error)
	assert.Equal(t, int64(1), fresh.LikesCount)

	assert.Error(t, AddFavorite(db, user.ID, movie.ID), "duplicate pair rejected")

	require.NoError(t, RemoveFavorite(db, user.ID, movie.ID))
	require.NoError(t, db.First(&fresh, movie.ID).Error)
	assert.Equal(t, int64(0), fresh.LikesCount)

	assert.Error(t, RemoveFavorite(db, user.ID, movie.ID), "removing twice fails")
}

func TestEpisodeRequiresTVShow(t *testing.T) {
	db := newTestDB(t)
	movie := createTestMovie(t, db, "plain-movie", false)

	err := db.Create(&Episode{
		TVShowID: movie.ID, SeasonNumber: 1, EpisodeNumber: 1,
		Title: "pilot", Duration: 40, FileURL: "/files/pilot.mp4",
	}).Error
	assert.ErrorIs(t, err, ErrNotTVShow)

	show := &Movie{
		Title: "show", Slug: "show", ReleaseYear: 2024, Duration: 40,
		ContentType: ContentTypeTVShow, IsActive: true,
	}
	require.NoError(t, db.Create(show).Error)
	require.NoError(t, db.Create(&Episode{
		TVShowID: show.ID, SeasonNumber: 1, EpisodeNumber: 1,
		Title: "pilot", Duration: 40, FileURL: "/files/pilot.mp4",
	}).Error)

	err = db.Create(&Episode{
		TVShowID: show.ID, SeasonNumber: 1, EpisodeNumber: 1,
		Title: "dup", Duration: 40, FileURL: "/files/dup.mp4",
	}).Error
	assert.Error(t, err, "season/episode pair is unique per show")
}
