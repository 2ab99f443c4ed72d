// Package farm runs the per-user crop plot: plant a seed, wait, harvest food.
package farm

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
)

const (
	// GrowthDuration is how long a crop takes to ripen
	GrowthDuration = 30 * time.Second
	// HarvestYield is the food granted per harvest
	HarvestYield = 3
)

// Action is a farm form action
type Action string

// Farm actions
const (
	ActionPlant   Action = "plant"
	ActionHarvest Action = "harvest"
)

// ParseAction accepts the form's "Plant" / "Harvest" buttons
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionPlant, ActionHarvest:
		return a, nil
	}
	return "", fmt.Errorf("%q: %w", s, domain.ErrUnknownFarmAction)
}

// NewPlot returns an empty plot, ready to plant
func NewPlot(userID string) domain.Plot {
	return domain.Plot{UserID: userID, Harvested: true}
}

// Stage reports the plot's stage at now and, while growing, the time left
func Stage(p domain.Plot, now time.Time) (domain.PlotStage, time.Duration) {
	if p.Harvested || p.PlantedAt == nil {
		return domain.PlotEmpty, 0
	}
	left := GrowthDuration - now.Sub(*p.PlantedAt)
	if left > 0 {
		return domain.PlotGrowing, left
	}
	return domain.PlotRipe, 0
}

// Plant consumes one seed on an empty plot
func Plant(p *domain.Plot, inv *domain.Inventory, now time.Time) error {
	if stage, _ := Stage(*p, now); stage != domain.PlotEmpty {
		return domain.ErrPlotBusy
	}
	if err := inventory.Consume(inv, domain.ItemSeed, domain.ErrNoSeed); err != nil {
		return err
	}
	p.PlantedAt = &now
	p.Harvested = false
	return nil
}

// Harvest collects a ripe crop into HarvestYield food and empties the plot
func Harvest(p *domain.Plot, inv *domain.Inventory, now time.Time) error {
	switch stage, _ := Stage(*p, now); stage {
	case domain.PlotEmpty:
		return domain.ErrNothingToHarvest
	case domain.PlotGrowing:
		return domain.ErrCropNotRipe
	}
	if err := inventory.Add(inv, domain.ItemFood, HarvestYield); err != nil {
		return err
	}
	p.Harvested = true
	return nil
}
