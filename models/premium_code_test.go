package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&PremiumCode{}).Redeemable(now))
	assert.True(t, (&PremiumCode{ExpiresAt: &future}).Redeemable(now))
	assert.False(t, (&PremiumCode{IsUsed: true}).Redeemable(now))
	assert.False(t, (&PremiumCode{ExpiresAt: &past}).Redeemable(now))
}

func TestRedeemPremiumCodeExtendsFromNow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "redeemer")
	code := PremiumCode{Code: "CODE30", Days: 30}
	require.NoError(t, db.Create(&code).Error)

	now := time.Now()
	require.NoError(t, RedeemPremiumCode(db, &code, user, now))

	assert.True(t, user.IsPremium)
	require.NotNil(t, user.PremiumUntil)
	assert.WithinDuration(t, now.AddDate(0, 0, 30), *user.PremiumUntil, time.Second)

	var stored PremiumCode
	require.NoError(t, db.First(&stored, code.ID).Error)
	assert.True(t, stored.IsUsed)
	require.NotNil(t, stored.UsedByUserID)
	assert.Equal(t, user.ID, *stored.UsedByUserID)
}

func TestRedeemPremiumCodeStacksOnActiveWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	existing := now.AddDate(0, 0, 10)

	user := createTestUser(t, db, "stacker")
	require.NoError(t, db.Model(user).Updates(map[string]interface{}{
		"is_premium":    true,
		"premium_until": existing,
	}).Error)
	user.IsPremium = true
	user.PremiumUntil = &existing

	code := PremiumCode{Code: "STACK7", Days: 7}
	require.NoError(t, db.Create(&code).Error)

	require.NoError(t, RedeemPremiumCode(db, &code, user, now))
	assert.WithinDuration(t, existing.AddDate(0, 0, 7), *user.PremiumUntil, time.Second)
}

func TestRedeemPremiumCodeSingleUse(t *testing.T) {
	db := newTestDB(t)
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	code := PremiumCode{Code: "ONCE", Days: 30}
	require.NoError(t, db.Create(&code).Error)

	now := time.Now()
	require.NoError(t, RedeemPremiumCode(db, &code, first, now))
	err := RedeemPremiumCode(db, &code, second, now)
	assert.Error(t, err, "a used code must not redeem again")
	assert.False(t, second.IsPremium)
}
