package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An explicit false on Create must survive the round trip; a column default
// of true would silently reactivate the row.
func TestCreatePersistsExplicitFalseFlags(t *testing.T) {
	db := newTestDB(t)

	movie := Movie{Title: "draft", Slug: "draft", ContentType: ContentTypeMovie, IsActive: false}
	require.NoError(t, db.Create(&movie).Error)

	var freshMovie Movie
	require.NoError(t, db.First(&freshMovie, movie.ID).Error)
	assert.False(t, freshMovie.IsActive, "movie created with IsActive=false must stay inactive")

	video := Video{MovieID: movie.ID, Quality: "720p", Language: "en", VideoFile: "/v/draft.mp4", IsActive: false}
	require.NoError(t, db.Create(&video).Error)

	var freshVideo Video
	require.NoError(t, db.First(&freshVideo, video.ID).Error)
	assert.False(t, freshVideo.IsActive)

	user := User{Username: "suspended", Email: "suspended@example.com", Password: "x", IsActive: false}
	require.NoError(t, db.Create(&user).Error)

	var freshUser User
	require.NoError(t, db.First(&freshUser, user.ID).Error)
	assert.False(t, freshUser.IsActive)
}
