package domain

import "time"

// StartingCoins is the balance granted at registration
const StartingCoins = 100

// User represents a registered player
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Coins          int        `json:"coins"`
	LoginStreak    int        `json:"login_streak"`
	LastRewardDate *time.Time `json:"last_reward_date,omitempty"` // calendar date, UTC midnight
	EmailConfirmed bool       `json:"email_confirmed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
