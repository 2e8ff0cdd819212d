package dto

import "github.com/myhit051/hatyai-restart-sub000/internal/models"

// Marker is one renderable map pin. IDs are composited as "<type>-<uuid>"
// so pins from different entity tables can never collide.
type Marker struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location"`
	Status      string             `json:"status"`
	Coordinates models.Coordinates `json:"coordinates"`
	Approximate bool               `json:"approximate"`
}

type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

type MapResponse struct {
	Markers []Marker           `json:"markers"`
	Counts  map[string]int     `json:"counts"`
	Bounds  *Bounds            `json:"bounds,omitempty"`
	Center  models.Coordinates `json:"center"`
	Filter  string             `json:"filter"`
}
