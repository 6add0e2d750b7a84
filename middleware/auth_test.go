package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diyorbe-beep/kino11111/config"
	"github.com/diyorbe-beep/kino11111/models"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	models.SetDB(db)
	return db
}

func TestTokenPairRoundTrip(t *testing.T) {
	db := setupAuthTest(t)
	user := models.User{Username: "holder", Email: "holder@example.com", Password: "x", IsActive: true, Role: models.RoleRegular}
	require.NoError(t, db.Create(&user).Error)

	access, refresh, err := GenerateTokenPair(&user)
	require.NoError(t, err)

	claims, err := ParseToken(access)
	require.NoError(t, err)
	loaded, err := UserFromClaims(claims, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)

	claims, err = ParseToken(refresh)
	require.NoError(t, err)
	loaded, err = UserFromClaims(claims, TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	db := setupAuthTest(t)
	user := models.User{Username: "mixer", Email: "mixer@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	access, refresh, err := GenerateTokenPair(&user)
	require.NoError(t, err)

	claims, err := ParseToken(access)
	require.NoError(t, err)
	_, err = UserFromClaims(claims, TokenRefresh)
	assert.Error(t, err)

	claims, err = ParseToken(refresh)
	require.NoError(t, err)
	_, err = UserFromClaims(claims, TokenAccess)
	assert.Error(t, err)
}

func TestDisabledUserCannotAuthenticate(t *testing.T) {
	db := setupAuthTest(t)
	user := models.User{Username: "banned", Email: "banned@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	access, _, err := GenerateTokenPair(&user)
	require.NoError(t, err)

	// deactivation takes effect on the next request, token or not
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)

	claims, err := ParseToken(access)
	require.NoError(t, err)
	_, err = UserFromClaims(claims, TokenAccess)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	db := setupAuthTest(t)
	user := models.User{Username: "victim", Email: "victim@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	access, _, err := GenerateTokenPair(&user)
	require.NoError(t, err)

	_, err = ParseToken(access + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseToken(access)
	assert.Error(t, err)
}
