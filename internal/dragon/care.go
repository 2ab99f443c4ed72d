package dragon

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
)

// Action is a care action from the care page
type Action string

// Care actions
const (
	ActionFeed     Action = "feed"
	ActionPlay     Action = "play"
	ActionMedicine Action = "medicine"
)

// ParseAction maps form input to an Action
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionFeed, ActionPlay, ActionMedicine:
		return a, nil
	}
	return "", fmt.Errorf("%q: %w", s, domain.ErrUnknownAction)
}

// Feed applies decay, consumes one food and raises hunger by CareBoost.
// Feeding does not cure sickness. On error d and inv are unchanged.
func Feed(d *domain.Dragon, inv *domain.Inventory, now time.Time) error {
	c := *d
	ApplyDecay(&c, now)
	if err := inventory.Consume(inv, domain.ItemFood, domain.ErrNoFood); err != nil {
		return err
	}
	c.Hunger = boost(c.Hunger)
	c.LastFedAt = &now
	*d = c
	return nil
}

// Play applies decay, consumes one toy and raises happiness by CareBoost.
// On error d and inv are unchanged.
func Play(d *domain.Dragon, inv *domain.Inventory, now time.Time) error {
	c := *d
	ApplyDecay(&c, now)
	if err := inventory.Consume(inv, domain.ItemToy, domain.ErrNoToy); err != nil {
		return err
	}
	c.Happiness = boost(c.Happiness)
	c.LastPlayedAt = &now
	*d = c
	return nil
}

// Medicate cures a sick dragon whose hunger is above zero, consuming one medicine.
// Nothing is consumed when the dragon is healthy or still starving.
func Medicate(d *domain.Dragon, inv *domain.Inventory, now time.Time) error {
	c := *d
	ApplyDecay(&c, now)
	if !c.Sick {
		return domain.ErrNotSick
	}
	if c.Hunger == domain.MinVitality {
		return domain.ErrStillStarving
	}
	if err := inventory.Consume(inv, domain.ItemMedicine, domain.ErrNoMedicine); err != nil {
		return err
	}
	c.Sick = false
	*d = c
	return nil
}

// Apply dispatches a care action
func Apply(action Action, d *domain.Dragon, inv *domain.Inventory, now time.Time) error {
	switch action {
	case ActionFeed:
		return Feed(d, inv, now)
	case ActionPlay:
		return Play(d, inv, now)
	case ActionMedicine:
		return Medicate(d, inv, now)
	}
	return domain.ErrUnknownAction
}
