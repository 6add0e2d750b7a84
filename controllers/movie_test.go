package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diyorbe-beep/kino11111/models"
)

func TestMovieListingFiltersPremiumForAnonymous(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "free-one", false)
	seedMovie(t, db, "premium-one", true)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/movies", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Items []models.MovieListResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "free-one", data.Items[0].Slug)
}

func TestMovieListingIncludesPremiumForSubscriber(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "free-two", false)
	seedMovie(t, db, "premium-two", true)

	until := time.Now().Add(24 * time.Hour)
	subscriber := seedUser(t, db, "subscriber", &until)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/movies", nil, authHeader(t, subscriber))
	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Items []models.MovieListResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Items, 2)
}

func TestHiddenMovieAnswersNotFound(t *testing.T) {
	db, r := setupRouter(t)
	movie := seedMovie(t, db, "hidden-movie", false)
	require.NoError(t, db.Model(movie).Update("is_active", false).Error)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/movies/hidden-movie", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MOVIE_NOT_FOUND", env.ID)
}

func TestMovieDetailRecordsView(t *testing.T) {
	db, r := setupRouter(t)
	movie := seedMovie(t, db, "viewed-movie", false)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/movies/viewed-movie", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var views int64
	db.Model(&models.MovieView{}).Where("movie_id = ?", movie.ID).Count(&views)
	assert.Equal(t, int64(1), views)

	var fresh models.Movie
	require.NoError(t, db.First(&fresh, movie.ID).Error)
	assert.Equal(t, int64(1), fresh.ViewsCount)
}

func TestWatchPremiumMovieGated(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "gated", true)

	// anonymous
	w, env := doJSON(t, r, http.MethodGet, "/api/v1/movies/gated/watch", nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "PREMIUM_REQUIRED", env.ID)

	// regular user
	regular := seedUser(t, db, "pleb", nil)
	w, env = doJSON(t, r, http.MethodGet, "/api/v1/movies/gated/watch", nil, authHeader(t, regular))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "PREMIUM_REQUIRED", env.ID)

	// lapsed subscriber
	past := time.Now().Add(-time.Hour)
	lapsed := seedUser(t, db, "lapsed", &past)
	w, env = doJSON(t, r, http.MethodGet, "/api/v1/movies/gated/watch", nil, authHeader(t, lapsed))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "PREMIUM_REQUIRED", env.ID)

	// active subscriber
	future := time.Now().Add(time.Hour)
	subscriber := seedUser(t, db, "payer", &future)
	w, env = doJSON(t, r, http.MethodGet, "/api/v1/movies/gated/watch", nil, authHeader(t, subscriber))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS_MESSAGE", env.ID)
}

func TestWatchFreeMovieOpenToAll(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "open", false)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/movies/open/watch", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS_MESSAGE", env.ID)
}
