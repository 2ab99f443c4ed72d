// Package dragon holds creature state: vitality decay, sickness and care.
package dragon

import (
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/utils"
)

const (
	// DecayPointsPerHour is how fast hunger and happiness fall
	DecayPointsPerHour = 5
	// CareBoost is gained per feed or play
	CareBoost = 20

	pointInterval = time.Hour / DecayPointsPerHour
)

// DecayPoints is floor(elapsed_seconds / 3600 * 5), never negative
func DecayPoints(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed.Seconds() / 3600 * DecayPointsPerHour)
}

// Decay lowers counter by the points accrued since anchor and returns the new
// counter with the anchor advanced past the consumed points. A nil anchor is
// initialised to now with no decay. When the counter bottoms out the anchor
// moves to now so later care starts a fresh interval.
func Decay(counter int, anchor *time.Time, now time.Time) (int, time.Time) {
	if anchor == nil {
		return counter, now
	}
	points := DecayPoints(now.Sub(*anchor))
	if points == 0 {
		return counter, *anchor
	}
	if points >= counter {
		return domain.MinVitality, now
	}
	return counter - points, anchor.Add(time.Duration(points) * pointInterval)
}

// ApplyDecay brings the dragon's vitals up to now and marks it sick
// when hunger reaches zero. Returns true if any field changed.
func ApplyDecay(d *domain.Dragon, now time.Time) bool {
	hunger, fedAnchor := Decay(d.Hunger, d.LastFedAt, now)
	happy, playAnchor := Decay(d.Happiness, d.LastPlayedAt, now)

	changed := hunger != d.Hunger || happy != d.Happiness ||
		d.LastFedAt == nil || !d.LastFedAt.Equal(fedAnchor) ||
		d.LastPlayedAt == nil || !d.LastPlayedAt.Equal(playAnchor)

	d.Hunger = hunger
	d.Happiness = happy
	d.LastFedAt = &fedAnchor
	d.LastPlayedAt = &playAnchor

	if d.Hunger == domain.MinVitality && !d.Sick {
		d.Sick = true
		changed = true
	}
	return changed
}

// Restore refills both vitals and restarts their decay clocks
func Restore(d *domain.Dragon, now time.Time) {
	d.Hunger = domain.MaxVitality
	d.Happiness = domain.MaxVitality
	d.LastFedAt = &now
	d.LastPlayedAt = &now
}

func boost(v int) int {
	return utils.ClampInt(v+CareBoost, domain.MinVitality, domain.MaxVitality)
}
