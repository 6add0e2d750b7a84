package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diyorbe-beep/kino11111/models"
)

func TestCreateRatingThenDuplicateRejected(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "ratable", false)
	user := seedUser(t, db, "onetime", nil)
	headers := authHeader(t, user)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/ratable/ratings",
		map[string]interface{}{"score": 8}, headers)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "CREATED", env.ID)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/movies/ratable/ratings",
		map[string]interface{}{"score": 9}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_RATED", env.ID)

	var n int64
	db.Model(&models.Rating{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestCreateRatingOutOfRange(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "strict", false)
	user := seedUser(t, db, "extremist", nil)
	headers := authHeader(t, user)

	for _, score := range []int{11, -3, 42} {
		w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/strict/ratings",
			map[string]interface{}{"score": score}, headers)
		assert.Equal(t, http.StatusBadRequest, w.Code, "score %d", score)
		assert.Equal(t, "INVALID_RATING", env.ID)
	}

	var n int64
	db.Model(&models.Rating{}).Count(&n)
	assert.Equal(t, int64(0), n)
}

func TestRatingStoreFailureNotReportedAsConflict(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "fragile", false)
	user := seedUser(t, db, "unlucky", nil)

	require.NoError(t, db.Migrator().DropTable(&models.Rating{}))

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/fragile/ratings",
		map[string]interface{}{"score": 7}, authHeader(t, user))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", env.ID)
}

func TestRatingRequiresAuth(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "members-only", false)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/members-only/ratings",
		map[string]interface{}{"score": 8}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", env.ID)
}

func TestCommentAndReply(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "talked-about", false)
	user := seedUser(t, db, "talker", nil)
	headers := authHeader(t, user)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/talked-about/comments",
		map[string]interface{}{"text": "great"}, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.CommentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/movies/talked-about/comments",
		map[string]interface{}{"text": "agreed", "parent_id": created.ID}, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	// listing nests the reply under its parent
	w, env = doJSON(t, r, http.MethodGet, "/api/v1/movies/talked-about/comments", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Items []models.CommentResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	require.Len(t, data.Items[0].Replies, 1)
	assert.Equal(t, "agreed", data.Items[0].Replies[0].Text)
}

func TestReplyEndpointLandsOnParentsMovie(t *testing.T) {
	db, r := setupRouter(t)
	movie := seedMovie(t, db, "discussed", false)
	user := seedUser(t, db, "responder", nil)
	headers := authHeader(t, user)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/discussed/comments",
		map[string]interface{}{"text": "root"}, headers)
	var parent models.CommentResponse
	require.NoError(t, json.Unmarshal(env.Data, &parent))

	w, env := doJSON(t, r, http.MethodPost,
		"/api/v1/comments/"+strconv.Itoa(int(parent.ID))+"/reply",
		map[string]interface{}{"text": "me too"}, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	var reply models.Comment
	require.NoError(t, db.Last(&reply).Error)
	assert.Equal(t, movie.ID, reply.MovieID)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestReplyToMissingCommentNotFound(t *testing.T) {
	db, r := setupRouter(t)
	user := seedUser(t, db, "ghosted", nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/comments/9999/reply",
		map[string]interface{}{"text": "anyone?"}, authHeader(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "COMMENT_NOT_FOUND", env.ID)
}

func TestReplyMustStayOnParentsMovie(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "origin", false)
	seedMovie(t, db, "other", false)
	user := seedUser(t, db, "strayer", nil)
	headers := authHeader(t, user)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/origin/comments",
		map[string]interface{}{"text": "root"}, headers)
	var created models.CommentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/other/comments",
		map[string]interface{}{"text": "stray", "parent_id": created.ID}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.ID)

	var fieldErrors map[string]map[string]string
	require.NoError(t, json.Unmarshal(env.Errors, &fieldErrors))
	assert.Contains(t, fieldErrors, "parent_id")
}

func TestDeleteCommentSoftHidesIt(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "ephemeral", false)
	user := seedUser(t, db, "regretter", nil)
	headers := authHeader(t, user)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/ephemeral/comments",
		map[string]interface{}{"text": "oops"}, headers)
	var created models.CommentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, _ := doJSON(t, r, http.MethodDelete,
		"/api/v1/comments/"+strconv.Itoa(int(created.ID)), nil, headers)
	assert.Equal(t, http.StatusOK, w.Code)

	// hidden from the listing, still in the table
	_, env = doJSON(t, r, http.MethodGet, "/api/v1/movies/ephemeral/comments", nil, nil)
	var data struct {
		Items []models.CommentResponse `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Items)

	var stored models.Comment
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestDeleteSomeoneElsesCommentIsNotFound(t *testing.T) {
	db, r := setupRouter(t)
	seedMovie(t, db, "contested", false)
	author := seedUser(t, db, "author", nil)
	intruder := seedUser(t, db, "intruder", nil)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/contested/comments",
		map[string]interface{}{"text": "mine"}, authHeader(t, author))
	var created models.CommentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// ownership failures read as not-found, not forbidden
	w, env := doJSON(t, r, http.MethodDelete,
		"/api/v1/comments/"+strconv.Itoa(int(created.ID)), nil, authHeader(t, intruder))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "COMMENT_NOT_FOUND", env.ID)
}

func TestFavoriteTwiceRejected(t *testing.T) {
	db, r := setupRouter(t)
	movie := seedMovie(t, db, "lovable", false)
	user := seedUser(t, db, "lover", nil)
	headers := authHeader(t, user)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/movies/lovable/favorite", nil, headers)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/movies/lovable/favorite", nil, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ALREADY_FAVORITED", env.ID)

	var fresh models.Movie
	require.NoError(t, db.First(&fresh, movie.ID).Error)
	assert.Equal(t, int64(1), fresh.LikesCount)
}

func TestRedeemPremiumCodeFlow(t *testing.T) {
	db, r := setupRouter(t)
	user := seedUser(t, db, "member", nil)
	headers := authHeader(t, user)

	code := models.PremiumCode{Code: "WELCOME30", Days: 30}
	require.NoError(t, db.Create(&code).Error)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/premium/redeem",
		map[string]interface{}{"code": "WELCOME30"}, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PREMIUM_GRANTED", env.ID)
	assert.NotContains(t, env.Message, "{until}", "placeholder must interpolate")

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.True(t, fresh.IsPremium)
	require.NotNil(t, fresh.PremiumUntil)

	// a second redemption fails
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/premium/redeem",
		map[string]interface{}{"code": "WELCOME30"}, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CODE_NOT_FOUND", env.ID)
}
