// Package reward rolls mission reward bundles by tier.
package reward

import (
	"fmt"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/utils"
)

// table describes one tier: an egg with probability eggChance, otherwise
// total items split into k food and total-k toys with k uniform in [1, total].
type table struct {
	total     int
	eggChance float64
}

var tables = map[domain.Tier]table{
	domain.TierQuick:  {total: 2, eggChance: 0},
	domain.TierMedium: {total: 5, eggChance: 0.2},
	domain.TierLong:   {total: 8, eggChance: 0.45},
}

// Roller rolls reward bundles from an injected randomness source
type Roller struct {
	rng utils.RNG
}

// NewRoller creates a roller; a nil rng uses utils.GlobalRNG
func NewRoller(rng utils.RNG) *Roller {
	if rng == nil {
		rng = utils.GlobalRNG
	}
	return &Roller{rng: rng}
}

// Roll returns the bundle for tier. Zero-quantity entries are omitted.
func (r *Roller) Roll(tier domain.Tier) (domain.ItemBundle, error) {
	t, ok := tables[tier]
	if !ok {
		return nil, fmt.Errorf("%q: %w", tier, domain.ErrUnknownTier)
	}

	if t.eggChance > 0 && r.rng.Float64() < t.eggChance {
		return domain.ItemBundle{domain.ItemEgg: 1}, nil
	}

	food := utils.RandomIntFrom(r.rng, 1, t.total)
	bundle := domain.ItemBundle{domain.ItemFood: food}
	if toys := t.total - food; toys > 0 {
		bundle[domain.ItemToy] = toys
	}
	return bundle, nil
}
