package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

var day0 = time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC)

func TestApply_Scenario(t *testing.T) {
	u := &domain.User{Coins: 100}

	r := Apply(u, day0)
	assert.True(t, r.Claimed)
	assert.Equal(t, 10, r.Coins)
	assert.Equal(t, 0, u.LoginStreak)
	assert.Equal(t, Today(day0), *u.LastRewardDate)
	assert.Equal(t, 110, u.Coins)

	r = Apply(u, day0.Add(24*time.Hour))
	assert.Equal(t, 20, r.Coins)
	assert.Equal(t, 1, u.LoginStreak)
	assert.Equal(t, 130, u.Coins)

	r = Apply(u, day0.Add(26*time.Hour))
	assert.False(t, r.Claimed, "same day second visit")
	assert.Equal(t, 130, u.Coins)
	assert.Equal(t, 1, u.LoginStreak)
}

func TestApply_MissedDayResets(t *testing.T) {
	last := Today(day0)
	u := &domain.User{LoginStreak: 4, LastRewardDate: &last}

	r := Apply(u, day0.AddDate(0, 0, 3))
	assert.Equal(t, 1, u.LoginStreak)
	assert.Equal(t, 20, r.Coins)
}

func TestApply_SeventhDayGrantsEgg(t *testing.T) {
	last := Today(day0)
	u := &domain.User{LoginStreak: 6, LastRewardDate: &last}

	r := Apply(u, day0.AddDate(0, 0, 1))
	assert.Equal(t, 1, r.Eggs)
	assert.Equal(t, 0, u.LoginStreak)
	assert.Equal(t, 10, r.Coins)
}

func TestApply_ConsecutiveWeek(t *testing.T) {
	u := &domain.User{}
	eggs := 0
	for d := 0; d < 8; d++ {
		eggs += Apply(u, day0.AddDate(0, 0, d)).Eggs
	}
	assert.Equal(t, 1, eggs)
	assert.Equal(t, 0, u.LoginStreak)
}

func TestApply_MidnightBoundary(t *testing.T) {
	late := time.Date(2026, 6, 10, 23, 59, 0, 0, time.UTC)
	u := &domain.User{}
	Apply(u, late)

	r := Apply(u, late.Add(2*time.Minute))
	assert.True(t, r.Claimed)
	assert.Equal(t, 1, u.LoginStreak)
}

func TestApply_ClockRollback(t *testing.T) {
	future := Today(day0).AddDate(0, 0, 2)
	u := &domain.User{LoginStreak: 3, LastRewardDate: &future, Coins: 5}
	r := Apply(u, day0)
	assert.False(t, r.Claimed)
	assert.Equal(t, 5, u.Coins)
}
