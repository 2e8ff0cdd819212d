package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/catalog"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Registry {
	registry := catalog.NewRegistry()
	registry.Register(&catalog.Category{Slug: "cleaning", NameTH: "ทำความสะอาด", NameEN: "Cleaning"})
	registry.Register(&catalog.Category{Slug: "repair", NameTH: "ซ่อมแซม", NameEN: "Repair"})
	return registry
}

func createGeneralJob(t *testing.T, svc *GeneralJobService, posterID uuid.UUID) *dto.GeneralJobResponse {
	t.Helper()
	job, err := svc.Create(posterID, &dto.CreateGeneralJobRequest{
		Title:        "ล้างโคลนหน้าบ้าน",
		Description:  "needs two people",
		Category:     "cleaning",
		PostingType:  "hiring",
		WageAmount:   400,
		WageType:     "daily",
		ContactPhone: "0812345678",
	})
	require.NoError(t, err)
	return job
}

func TestCreateGeneralJobValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())
	poster := uuid.New()

	_, err := svc.Create(poster, &dto.CreateGeneralJobRequest{PostingType: "hiring"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(poster, &dto.CreateGeneralJobRequest{Title: "x", PostingType: "renting"})
	assert.ErrorIs(t, err, ErrInvalidPostingType)

	_, err = svc.Create(poster, &dto.CreateGeneralJobRequest{Title: "x", PostingType: "hiring", Category: "mining"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestViewCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())
	job := createGeneralJob(t, svc, uuid.New())

	// every page load counts, repeat viewer or not
	require.NoError(t, svc.IncrementViewCount(job.ID))
	require.NoError(t, svc.IncrementViewCount(job.ID))

	got, err := svc.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
}

func TestViewCountUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())

	assert.ErrorIs(t, svc.IncrementViewCount(uuid.New()), ErrGeneralJobNotFound)
}

func TestApply(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())
	job := createGeneralJob(t, svc, uuid.New())
	applicant := uuid.New()

	application, err := svc.Apply(job.ID, applicant, "ว่างทุกวัน")
	require.NoError(t, err)
	assert.Equal(t, job.ID, application.JobID)
	assert.Equal(t, applicant, application.ApplicantID)

	// same user twice is a conflict, not a second row
	_, err = svc.Apply(job.ID, applicant, "again")
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	applications, err := svc.ListApplications(job.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)
}

func TestRevealContact(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())
	job := createGeneralJob(t, svc, uuid.New())
	viewer := uuid.New()

	before, err := svc.ContactStatus(job.ID, viewer)
	require.NoError(t, err)
	assert.False(t, before.Revealed)
	assert.Empty(t, before.ContactPhone)

	first, err := svc.RevealContact(job.ID, viewer)
	require.NoError(t, err)
	assert.True(t, first.Revealed)
	assert.Equal(t, "0812345678", first.ContactPhone)
	assert.Equal(t, 1, first.ContactCount)

	// repeat reveal by the same user must not bump the counter
	second, err := svc.RevealContact(job.ID, viewer)
	require.NoError(t, err)
	assert.True(t, second.Revealed)
	assert.Equal(t, 1, second.ContactCount)

	// a different user does
	other, err := svc.RevealContact(job.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, other.ContactCount)

	after, err := svc.ContactStatus(job.ID, viewer)
	require.NoError(t, err)
	assert.True(t, after.Revealed)
	assert.Equal(t, "0812345678", after.ContactPhone)
}

func TestGeneralJobResponseHidesPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())
	job := createGeneralJob(t, svc, uuid.New())

	got, err := svc.Get(job.ID)
	require.NoError(t, err)

	// phone lives behind the reveal endpoint only
	assert.NotContains(t, []string{got.Title, got.Description, got.Location}, "0812345678")
}

func TestListGeneralJobsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewGeneralJobService(db, testCatalog())
	poster := uuid.New()
	createGeneralJob(t, svc, poster)

	_, err := svc.Create(uuid.New(), &dto.CreateGeneralJobRequest{
		Title:       "รับซ่อมหลังคา",
		Category:    "repair",
		PostingType: "seeking",
	})
	require.NoError(t, err)

	hiring, err := svc.List(GeneralJobFilters{PostingType: "hiring"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, hiring.Jobs, 1)

	byPoster, err := svc.List(GeneralJobFilters{PosterID: &poster}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, byPoster.Jobs, 1)

	repair, err := svc.List(GeneralJobFilters{Category: "repair"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, repair.Jobs, 1)

	all, err := svc.List(GeneralJobFilters{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}
