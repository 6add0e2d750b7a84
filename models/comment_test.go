package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepliesNestRecursively(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "commenter")
	movie := createTestMovie(t, db, "discussed", false)

	root := Comment{UserID: user.ID, MovieID: movie.ID, Text: "root", IsActive: true}
	require.NoError(t, db.Create(&root).Error)

	reply := Comment{UserID: user.ID, MovieID: movie.ID, Text: "reply", ParentID: &root.ID, IsActive: true}
	require.NoError(t, db.Create(&reply).Error)

	deep := Comment{UserID: user.ID, MovieID: movie.ID, Text: "deep", ParentID: &reply.ID, IsActive: true}
	require.NoError(t, db.Create(&deep).Error)

	root.User = *user
	resp := root.ToResponse(db, LangEn)
	require.Len(t, resp.Replies, 1)
	require.Len(t, resp.Replies[0].Replies, 1)
	assert.Equal(t, "deep", resp.Replies[0].Replies[0].Text)
}

func TestSoftDeletedCommentHiddenRepliesSurvive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "deleter")
	movie := createTestMovie(t, db, "moderated", false)

	root := Comment{UserID: user.ID, MovieID: movie.ID, Text: "root", IsActive: true}
	require.NoError(t, db.Create(&root).Error)
	reply := Comment{UserID: user.ID, MovieID: movie.ID, Text: "kept", ParentID: &root.ID, IsActive: true}
	require.NoError(t, db.Create(&reply).Error)

	require.NoError(t, db.Model(&root).Update("is_active", false).Error)

	// the row is still in the table, only flagged
	var kept Comment
	require.NoError(t, db.First(&kept, root.ID).Error)
	assert.False(t, kept.IsActive)

	// reply visibility is its own flag, not inherited
	var activeReplies int64
	db.Model(&Comment{}).Where("parent_id = ? AND is_active = ?", root.ID, true).Count(&activeReplies)
	assert.Equal(t, int64(1), activeReplies)
}

func TestInactiveRepliesExcludedFromNesting(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "nester")
	movie := createTestMovie(t, db, "filtered", false)

	root := Comment{UserID: user.ID, MovieID: movie.ID, Text: "root", IsActive: true}
	require.NoError(t, db.Create(&root).Error)
	visible := Comment{UserID: user.ID, MovieID: movie.ID, Text: "visible", ParentID: &root.ID, IsActive: true}
	require.NoError(t, db.Create(&visible).Error)
	hidden := Comment{UserID: user.ID, MovieID: movie.ID, Text: "hidden", ParentID: &root.ID, IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	root.User = *user
	resp := root.ToResponse(db, LangEn)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, "visible", resp.Replies[0].Text)
}
