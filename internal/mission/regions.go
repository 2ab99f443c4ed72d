// Package mission runs the dispatch and resolve cycle of dragon missions.
package mission

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// RegionInfo is the static configuration of one destination
type RegionInfo struct {
	Region   domain.Region
	Title    string
	Duration time.Duration
	Tier     domain.Tier
	// Restores refills vitals instead of rolling items
	Restores bool
}

var regions = []RegionInfo{
	{Region: domain.RegionFarm, Title: "Farm", Duration: 2000 * time.Second, Tier: domain.TierQuick},
	{Region: domain.RegionMushroomForest, Title: "Mushroom Forest", Duration: 2000 * time.Second, Tier: domain.TierQuick},
	{Region: domain.RegionPond, Title: "Pond", Duration: 3600 * time.Second, Tier: domain.TierMedium},
	{Region: domain.RegionSleepingForest, Title: "Sleeping Forest", Duration: 3600 * time.Second, Tier: domain.TierMedium},
	{Region: domain.RegionOpenField, Title: "Open Field", Duration: 3600 * time.Second, Restores: true},
	{Region: domain.RegionWishingWell, Title: "Wishing Well", Duration: 7200 * time.Second, Tier: domain.TierLong},
	{Region: domain.RegionCrystalPeaks, Title: "Crystal Peaks", Duration: 7200 * time.Second, Tier: domain.TierLong},
}

// Regions lists every destination in display order
func Regions() []RegionInfo {
	return append([]RegionInfo(nil), regions...)
}

// Lookup returns the configuration of region
func Lookup(region domain.Region) (RegionInfo, error) {
	for _, r := range regions {
		if r.Region == region {
			return r, nil
		}
	}
	return RegionInfo{}, fmt.Errorf("%q: %w", region, domain.ErrUnknownRegion)
}

// ParseRegion normalises form input into a known region
func ParseRegion(s string) (domain.Region, error) {
	r := domain.Region(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(r); err != nil {
		return "", err
	}
	return r, nil
}
