package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNeedDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	requester := uuid.New()

	need, err := svc.Create(requester, &dto.CreateNeedRequest{
		ResourceType:     "shelter",
		RequiredQuantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.NeedPending, need.Status)
	assert.Equal(t, "medium", need.Urgency)
	assert.Equal(t, 1, need.BeneficiaryCount)
	assert.Equal(t, "medium", need.VulnerabilityLevel)
	assert.Nil(t, need.MatchedResourceID)
}

func TestCreateNeedValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	caller := uuid.New()

	_, err := svc.Create(caller, &dto.CreateNeedRequest{ResourceType: "housing"})
	assert.ErrorIs(t, err, ErrInvalidResourceType)

	_, err = svc.Create(caller, &dto.CreateNeedRequest{ResourceType: "water", Urgency: "asap"})
	assert.ErrorIs(t, err, ErrInvalidUrgency)

	_, err = svc.Create(caller, &dto.CreateNeedRequest{ResourceType: "water", VulnerabilityLevel: "extreme"})
	assert.ErrorIs(t, err, ErrInvalidVulnerability)

	// requesting on behalf of another account is rejected
	_, err = svc.Create(caller, &dto.CreateNeedRequest{ResourceType: "water", RequesterID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateNeed(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	need := createNeed(t, svc, uuid.New(), "food", 5, "low")

	urgency := "critical"
	beneficiaries := 12
	updated, err := svc.Update(need.ID, &dto.UpdateNeedRequest{
		Urgency:          &urgency,
		BeneficiaryCount: &beneficiaries,
	})
	require.NoError(t, err)
	assert.Equal(t, "critical", updated.Urgency)
	assert.Equal(t, 12, updated.BeneficiaryCount)

	zero := 0
	_, err = svc.Update(need.ID, &dto.UpdateNeedRequest{BeneficiaryCount: &zero})
	assert.ErrorIs(t, err, ErrInvalidBeneficiaryCount)
}

func TestListNeeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	requester := uuid.New()

	createNeed(t, svc, requester, "water", 3, "high")
	createNeed(t, svc, requester, "food", 8, "low")
	createNeed(t, svc, uuid.New(), "water", 1, "medium")

	byType, err := svc.List("water", "", nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byType.Total)

	byRequester, err := svc.List("", "", &requester, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byRequester.Total)

	pending, err := svc.List("", models.NeedPending, nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pending.Total)
}

func TestDeleteNeed(t *testing.T) {
	db := newTestDB(t)
	svc := NewNeedService(db)
	need := createNeed(t, svc, uuid.New(), "medicine", 1, "high")

	require.NoError(t, svc.Delete(need.ID))
	assert.ErrorIs(t, svc.Delete(need.ID), ErrNeedNotFound)
}
