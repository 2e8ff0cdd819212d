package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJob(t *testing.T, svc *JobService, reporterID uuid.UUID, title string) *dto.JobResponse {
	t.Helper()
	job, err := svc.Create(reporterID, &dto.CreateJobRequest{
		Title:    title,
		Category: "electrical",
		Urgency:  "high",
	})
	require.NoError(t, err)
	return job
}

func TestCreateJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	reporter := uuid.New()

	job := createJob(t, svc, reporter, "ไฟฟ้าลัดวงจรชั้นล่าง")
	assert.Equal(t, models.JobOpen, job.Status)
	assert.Equal(t, reporter, job.ReporterID)
	assert.Nil(t, job.TechnicianID)

	_, err := svc.Create(reporter, &dto.CreateJobRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestAssignJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := createJob(t, svc, uuid.New(), "ปั๊มน้ำพัง")
	technician := uuid.New()

	assigned, err := svc.Assign(job.ID, technician)
	require.NoError(t, err)
	require.NotNil(t, assigned.TechnicianID)
	assert.Equal(t, technician, *assigned.TechnicianID)
	assert.Equal(t, models.JobInProgress, assigned.Status)

	_, err = svc.Assign(uuid.New(), technician)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestListJobsSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	reporter := uuid.New()

	createJob(t, svc, reporter, "Roof leaking badly")
	createJob(t, svc, reporter, "Broken water pump")

	found, err := svc.List(JobFilters{Search: "ROOF"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, found.Jobs, 1)
	assert.Equal(t, "Roof leaking badly", found.Jobs[0].Title)

	byReporter, err := svc.List(JobFilters{ReporterID: &reporter}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byReporter.Total)
}

func TestListJobsByTechnician(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := createJob(t, svc, uuid.New(), "ซ่อมประตูบวมน้ำ")
	createJob(t, svc, uuid.New(), "another")
	technician := uuid.New()

	_, err := svc.Assign(job.ID, technician)
	require.NoError(t, err)

	mine, err := svc.List(JobFilters{TechnicianID: &technician}, 1, 20)
	require.NoError(t, err)
	require.Len(t, mine.Jobs, 1)
	assert.Equal(t, job.ID, mine.Jobs[0].ID)
}

func TestUpdateJobStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := createJob(t, svc, uuid.New(), "เครื่องซักผ้าน้ำเข้า")

	done, err := svc.UpdateStatus(job.ID, models.JobCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, done.Status)

	_, err = svc.UpdateStatus(job.ID, "paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
