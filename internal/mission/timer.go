package mission

import (
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// CanDispatch checks the dragon may leave: it must be healthy and idle
func CanDispatch(d domain.Dragon, m *domain.Mission) error {
	if m != nil && m.OnMission {
		return domain.ErrAlreadyOnMission
	}
	if d.Sick {
		return domain.ErrDragonSick
	}
	return nil
}

// Dispatch moves the pair's record to Dispatched, reusing any prior record
func Dispatch(d domain.Dragon, m *domain.Mission, region domain.Region, now time.Time) (domain.Mission, error) {
	if _, err := Lookup(region); err != nil {
		return domain.Mission{}, err
	}
	if err := CanDispatch(d, m); err != nil {
		return domain.Mission{}, err
	}
	return domain.Mission{
		UserID:    d.UserID,
		SpeciesID: d.SpeciesID,
		OnMission: true,
		StartedAt: &now,
		Region:    region,
	}, nil
}

// Remaining is how long until the mission can resolve; zero when due or idle
func Remaining(m domain.Mission, now time.Time) time.Duration {
	if !m.OnMission || m.StartedAt == nil {
		return 0
	}
	info, err := Lookup(m.Region)
	if err != nil {
		return 0
	}
	left := info.Duration - now.Sub(*m.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Due reports whether a dispatched mission has run its full duration
func Due(m domain.Mission, now time.Time) bool {
	return m.OnMission && m.StartedAt != nil && Remaining(m, now) == 0
}

// Complete flips a due mission back to Idle. It returns false for idle or
// unfinished missions so a mission resolves at most once.
func Complete(m *domain.Mission, now time.Time) bool {
	if !Due(*m, now) {
		return false
	}
	m.OnMission = false
	return true
}
