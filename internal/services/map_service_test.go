package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var hatYaiCenter = models.Coordinates{Lat: 7.0086, Lng: 100.4747}

func seedMapEntities(t *testing.T, db *gorm.DB) (resourceID uuid.UUID) {
	t.Helper()
	resources := NewResourceService(db)
	needs := NewNeedService(db)
	jobs := NewJobService(db)
	waste := NewWasteService(db)
	owner := uuid.New()

	resource := createResource(t, resources, owner, "water", 10, "high")
	createNeed(t, needs, owner, "food", 5, "medium")

	_, err := jobs.Create(owner, &dto.CreateJobRequest{
		Title:       "ซ่อมหลังคารั่ว",
		Category:    "roofing",
		Urgency:     "high",
		Location:    "บ้านพรุ",
		Coordinates: &models.Coordinates{Lat: 6.93, Lng: 100.47},
	})
	require.NoError(t, err)

	_, err = waste.Create(owner, &dto.CreateWasteReportRequest{
		WasteType: "construction",
		Severity:  "high",
		Hazardous: true,
	})
	require.NoError(t, err)

	return resource.ID
}

func TestMarkersCounts(t *testing.T) {
	db := newTestDB(t)
	seedMapEntities(t, db)
	svc := NewMapService(db, hatYaiCenter)

	all, err := svc.Markers(MapFilterAll)
	require.NoError(t, err)
	assert.Len(t, all.Markers, 4)
	assert.Equal(t, MapFilterAll, all.Filter)

	// per-type counts always sum to the marker total
	sum := 0
	for _, c := range all.Counts {
		sum += c
	}
	assert.Equal(t, len(all.Markers), sum)

	for _, filter := range []string{MapFilterWaste, MapFilterJob, MapFilterResource, MapFilterNeed} {
		resp, err := svc.Markers(filter)
		require.NoError(t, err)
		require.Len(t, resp.Markers, 1, "filter %s", filter)
		assert.Equal(t, filter, resp.Markers[0].Type)
		assert.Equal(t, all.Counts[filter], len(resp.Markers))
	}
}

func TestMarkersInvalidFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewMapService(db, hatYaiCenter)

	_, err := svc.Markers("flood")
	assert.ErrorIs(t, err, ErrInvalidMapFilter)
}

func TestMarkersDefaultFilter(t *testing.T) {
	db := newTestDB(t)
	seedMapEntities(t, db)
	svc := NewMapService(db, hatYaiCenter)

	resp, err := svc.Markers("")
	require.NoError(t, err)
	assert.Equal(t, MapFilterAll, resp.Filter)
}

func TestMarkersExcludeConsumedEntities(t *testing.T) {
	db := newTestDB(t)
	resourceID := seedMapEntities(t, db)
	resources := NewResourceService(db)
	svc := NewMapService(db, hatYaiCenter)

	_, err := resources.UpdateStatus(resourceID, models.ResourceDistributed)
	require.NoError(t, err)

	resp, err := svc.Markers(MapFilterResource)
	require.NoError(t, err)
	assert.Empty(t, resp.Markers)
}

func TestMarkerFallbackCoordinates(t *testing.T) {
	id := uuid.New()
	waste := []models.WasteReport{{ID: id, WasteType: "general", Status: models.WasteReported}}

	first := BuildMarkers(waste, nil, nil, nil, MapFilterAll, hatYaiCenter)
	second := BuildMarkers(waste, nil, nil, nil, MapFilterAll, hatYaiCenter)
	require.Len(t, first, 1)

	// fallback positions are hashed from the id, so reloads never jitter
	assert.Equal(t, first[0].Coordinates, second[0].Coordinates)
	assert.True(t, first[0].Approximate)
	assert.Equal(t, "ไม่ระบุตำแหน่ง", first[0].Location)

	// stays inside the spread box around the center
	assert.InDelta(t, hatYaiCenter.Lat, first[0].Coordinates.Lat, fallbackSpread)
	assert.InDelta(t, hatYaiCenter.Lng, first[0].Coordinates.Lng, fallbackSpread)
}

func TestMarkerRealCoordinates(t *testing.T) {
	coords := &models.Coordinates{Lat: 7.01, Lng: 100.48}
	waste := []models.WasteReport{{
		ID:          uuid.New(),
		WasteType:   "construction",
		Hazardous:   true,
		Status:      models.WasteReported,
		Location:    "ถนนนิพัทธ์อุทิศ 3",
		Coordinates: models.EncodeCoordinates(coords),
	}}

	markers := BuildMarkers(waste, nil, nil, nil, MapFilterWaste, hatYaiCenter)
	require.Len(t, markers, 1)
	assert.False(t, markers[0].Approximate)
	assert.Equal(t, *coords, markers[0].Coordinates)
	assert.Equal(t, "ขยะ construction (อันตราย)", markers[0].Title)
	assert.Equal(t, "waste-"+waste[0].ID.String(), markers[0].ID)
}

func TestMarkerBounds(t *testing.T) {
	assert.Nil(t, MarkerBounds(nil))

	markers := []dto.Marker{
		{Coordinates: models.Coordinates{Lat: 7.0, Lng: 100.4}},
		{Coordinates: models.Coordinates{Lat: 7.2, Lng: 100.5}},
		{Coordinates: models.Coordinates{Lat: 6.9, Lng: 100.6}},
	}
	bounds := MarkerBounds(markers)
	require.NotNil(t, bounds)
	assert.Equal(t, 6.9, bounds.MinLat)
	assert.Equal(t, 7.2, bounds.MaxLat)
	assert.Equal(t, 100.4, bounds.MinLng)
	assert.Equal(t, 100.6, bounds.MaxLng)
}
