package domain

import "time"

// Plot is a user's single farm plot. Harvested true means the plot is empty.
type Plot struct {
	UserID    string     `json:"user_id"`
	PlantedAt *time.Time `json:"planted_at,omitempty"`
	Harvested bool       `json:"harvested"`
}

// PlotStage describes what the farm page should offer
type PlotStage string

// Plot stages
const (
	PlotEmpty   PlotStage = "empty"
	PlotGrowing PlotStage = "growing"
	PlotRipe    PlotStage = "ripe"
)
