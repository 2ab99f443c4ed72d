// Package gacha turns eggs into dragons by weighted species draws.
package gacha

import (
	"fmt"
	"sort"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/utils"
)

// Picker draws species with probability weight_i / sum(weights).
// It keeps prefix sums and binary-searches them, so memory is O(species).
type Picker struct {
	species    []domain.Species
	cumulative []int
	total      int
}

// NewPicker builds a picker. Weights must be positive.
func NewPicker(species []domain.Species) (*Picker, error) {
	if len(species) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	p := &Picker{
		species:    append([]domain.Species(nil), species...),
		cumulative: make([]int, len(species)),
	}
	for i, sp := range p.species {
		if sp.Weight <= 0 {
			return nil, fmt.Errorf("%s: %w", sp.Name, domain.ErrInvalidWeight)
		}
		p.total += sp.Weight
		p.cumulative[i] = p.total
	}
	return p, nil
}

// Draw picks one species
func (p *Picker) Draw(rng utils.RNG) domain.Species {
	r := rng.IntN(p.total)
	// first index whose running total exceeds r
	i := sort.SearchInts(p.cumulative, r+1)
	return p.species[i]
}
