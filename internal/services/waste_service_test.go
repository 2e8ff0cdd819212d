package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWasteReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewWasteService(db)
	reporter := uuid.New()

	report, err := svc.Create(reporter, &dto.CreateWasteReportRequest{
		WasteType: "electronic",
		Severity:  "high",
		Hazardous: true,
		Location:  "ซอยสันติราษฎร์",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WasteReported, report.Status)
	assert.True(t, report.Hazardous)

	// severity defaults when omitted
	defaulted, err := svc.Create(reporter, &dto.CreateWasteReportRequest{WasteType: "construction"})
	require.NoError(t, err)
	assert.Equal(t, "medium", defaulted.Severity)

	_, err = svc.Create(reporter, &dto.CreateWasteReportRequest{WasteType: "plutonium"})
	assert.ErrorIs(t, err, ErrInvalidWasteType)
}

func TestListWasteReportsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewWasteService(db)
	reporter := uuid.New()

	_, err := svc.Create(reporter, &dto.CreateWasteReportRequest{WasteType: "construction", Severity: "low"})
	require.NoError(t, err)
	_, err = svc.Create(reporter, &dto.CreateWasteReportRequest{WasteType: "electronic", Severity: "high", Hazardous: true})
	require.NoError(t, err)
	_, err = svc.Create(uuid.New(), &dto.CreateWasteReportRequest{WasteType: "construction", Severity: "high"})
	require.NoError(t, err)

	hazardous := true
	got, err := svc.List(WasteFilters{Hazardous: &hazardous}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Total)

	got, err = svc.List(WasteFilters{WasteType: "construction"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Total)

	got, err = svc.List(WasteFilters{ReporterID: &reporter}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Total)
}

func TestUpdateWasteReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewWasteService(db)

	report, err := svc.Create(uuid.New(), &dto.CreateWasteReportRequest{WasteType: "general"})
	require.NoError(t, err)

	severity := "high"
	hazardous := true
	updated, err := svc.Update(report.ID, &dto.UpdateWasteReportRequest{
		Severity:  &severity,
		Hazardous: &hazardous,
	})
	require.NoError(t, err)
	assert.Equal(t, "high", updated.Severity)
	assert.True(t, updated.Hazardous)

	bad := "catastrophic"
	_, err = svc.Update(report.ID, &dto.UpdateWasteReportRequest{Severity: &bad})
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestUpdateWasteReportStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewWasteService(db)

	report, err := svc.Create(uuid.New(), &dto.CreateWasteReportRequest{WasteType: "general"})
	require.NoError(t, err)

	// reported straight to cleared is allowed
	cleared, err := svc.UpdateStatus(report.ID, models.WasteCleared)
	require.NoError(t, err)
	assert.Equal(t, models.WasteCleared, cleared.Status)

	_, err = svc.UpdateStatus(uuid.New(), models.WasteCleared)
	assert.ErrorIs(t, err, ErrWasteReportNotFound)
}
