// Package streak grants the daily login bonus.
package streak

import (
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

const (
	// BaseCoins is granted on every claim
	BaseCoins = 10
	// CoinsPerDay is added per streak day
	CoinsPerDay = 10
	// EggStreak is the streak length that earns an egg and resets
	EggStreak = 7
)

// Reward is the outcome of a visit
type Reward struct {
	Claimed bool // false when today's bonus was already taken
	Coins   int
	Eggs    int
	Streak  int
}

// Today truncates t to its UTC calendar date
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Apply updates the user's streak for a visit on today's date and credits coins.
// The caller credits Reward.Eggs to the inventory.
func Apply(u *domain.User, today time.Time) Reward {
	today = Today(today)

	if u.LastRewardDate != nil {
		last := Today(*u.LastRewardDate)
		switch {
		case !last.Before(today):
			return Reward{Streak: u.LoginStreak}
		case last.Equal(today.AddDate(0, 0, -1)):
			u.LoginStreak++
		default:
			u.LoginStreak = 1
		}
	} else {
		u.LoginStreak = 0
	}

	r := Reward{Claimed: true}
	if u.LoginStreak == EggStreak {
		r.Eggs = 1
		u.LoginStreak = 0
	}

	r.Coins = BaseCoins + u.LoginStreak*CoinsPerDay
	r.Streak = u.LoginStreak
	u.Coins += r.Coins
	u.LastRewardDate = &today
	return r
}
