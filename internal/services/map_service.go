package services

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidMapFilter = errors.New("invalid map filter")

const (
	MapFilterAll      = "all"
	MapFilterWaste    = "waste"
	MapFilterJob      = "job"
	MapFilterResource = "resource"
	MapFilterNeed     = "need"
)

var mapFilters = map[string]bool{
	MapFilterAll: true, MapFilterWaste: true, MapFilterJob: true,
	MapFilterResource: true, MapFilterNeed: true,
}

// Entities without a picked location get a deterministic pseudo-position
// hashed from their id, spread around the city center so the demo map is
// never empty. Markers carry Approximate=true so clients can tell.
const fallbackSpread = 0.054

// MapService merges the four entity streams into one marker list.
type MapService struct {
	db     *gorm.DB
	center models.Coordinates
}

func NewMapService(db *gorm.DB, center models.Coordinates) *MapService {
	return &MapService{db: db, center: center}
}

// Markers loads all four collections and recomputes the full marker list.
// No incremental path: full recomputation at community scale is the
// simplest correct design.
func (s *MapService) Markers(filter string) (*dto.MapResponse, error) {
	if filter == "" {
		filter = MapFilterAll
	}
	if !mapFilters[filter] {
		return nil, ErrInvalidMapFilter
	}

	var wasteReports []models.WasteReport
	if err := s.db.Find(&wasteReports).Error; err != nil {
		return nil, err
	}
	var jobs []models.Job
	if err := s.db.Find(&jobs).Error; err != nil {
		return nil, err
	}
	var resources []models.Resource
	if err := s.db.Find(&resources).Error; err != nil {
		return nil, err
	}
	var needs []models.Need
	if err := s.db.Find(&needs).Error; err != nil {
		return nil, err
	}

	markers := BuildMarkers(wasteReports, jobs, resources, needs, filter, s.center)

	counts := map[string]int{
		MapFilterWaste: 0, MapFilterJob: 0, MapFilterResource: 0, MapFilterNeed: 0,
	}
	for _, m := range markers {
		counts[m.Type]++
	}

	return &dto.MapResponse{
		Markers: markers,
		Counts:  counts,
		Bounds:  MarkerBounds(markers),
		Center:  s.center,
		Filter:  filter,
	}, nil
}

// BuildMarkers merges the four entity collections into a uniform marker
// list. Resources appear only while available and needs only while pending;
// jobs and waste reports have no inclusion predicate beyond the type filter.
func BuildMarkers(
	wasteReports []models.WasteReport,
	jobs []models.Job,
	resources []models.Resource,
	needs []models.Need,
	filter string,
	center models.Coordinates,
) []dto.Marker {
	markers := make([]dto.Marker, 0, len(wasteReports)+len(jobs)+len(resources)+len(needs))

	if filter == MapFilterAll || filter == MapFilterWaste {
		for _, w := range wasteReports {
			title := "ขยะ " + w.WasteType
			if w.Hazardous {
				title += " (อันตราย)"
			}
			markers = append(markers, newMarker(
				MapFilterWaste, w.ID, title, w.Description, w.Location, w.Status, w.Coordinates, center))
		}
	}

	if filter == MapFilterAll || filter == MapFilterJob {
		for _, j := range jobs {
			markers = append(markers, newMarker(
				MapFilterJob, j.ID, j.Title, j.Description, j.Location, j.Status, j.Coordinates, center))
		}
	}

	if filter == MapFilterAll || filter == MapFilterResource {
		for _, r := range resources {
			if r.Status != models.ResourceAvailable {
				continue
			}
			title := fmt.Sprintf("%s (%d %s)", r.Name, r.Quantity, r.Unit)
			markers = append(markers, newMarker(
				MapFilterResource, r.ID, title, r.Description, r.Location, r.Status, r.Coordinates, center))
		}
	}

	if filter == MapFilterAll || filter == MapFilterNeed {
		for _, n := range needs {
			if n.Status != models.NeedPending {
				continue
			}
			title := fmt.Sprintf("ต้องการ %s %d %s", n.ResourceType, n.RequiredQuantity, n.Unit)
			markers = append(markers, newMarker(
				MapFilterNeed, n.ID, title, n.Description, n.Location, n.Status, n.Coordinates, center))
		}
	}

	return markers
}

// MarkerBounds returns the lat/lng union for a client fit-all control, or
// nil when there are no markers.
func MarkerBounds(markers []dto.Marker) *dto.Bounds {
	if len(markers) == 0 {
		return nil
	}
	b := &dto.Bounds{
		MinLat: markers[0].Coordinates.Lat,
		MaxLat: markers[0].Coordinates.Lat,
		MinLng: markers[0].Coordinates.Lng,
		MaxLng: markers[0].Coordinates.Lng,
	}
	for _, m := range markers[1:] {
		if m.Coordinates.Lat < b.MinLat {
			b.MinLat = m.Coordinates.Lat
		}
		if m.Coordinates.Lat > b.MaxLat {
			b.MaxLat = m.Coordinates.Lat
		}
		if m.Coordinates.Lng < b.MinLng {
			b.MinLng = m.Coordinates.Lng
		}
		if m.Coordinates.Lng > b.MaxLng {
			b.MaxLng = m.Coordinates.Lng
		}
	}
	return b
}

func newMarker(markerType string, id uuid.UUID, title, description, location, status string, raw []byte, center models.Coordinates) dto.Marker {
	coords, approximate := resolveCoordinates(raw, id, center)
	if location == "" {
		location = "ไม่ระบุตำแหน่ง"
	}
	return dto.Marker{
		ID:          markerType + "-" + id.String(),
		Type:        markerType,
		Title:       title,
		Description: truncate(description, 120),
		Location:    location,
		Status:      status,
		Coordinates: coords,
		Approximate: approximate,
	}
}

func resolveCoordinates(raw []byte, id uuid.UUID, center models.Coordinates) (models.Coordinates, bool) {
	if c, ok := models.DecodeCoordinates(raw); ok {
		return *c, false
	}

	h := fnv.New32a()
	h.Write(id[:])
	sum := h.Sum32()

	latOffset := (float64(sum%1000)/1000.0 - 0.5) * fallbackSpread
	lngOffset := (float64((sum/1000)%1000)/1000.0 - 0.5) * fallbackSpread

	return models.Coordinates{
		Lat: center.Lat + latOffset,
		Lng: center.Lng + lngOffset,
	}, true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
