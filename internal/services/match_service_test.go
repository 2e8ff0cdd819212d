package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createResource(t *testing.T, svc *ResourceService, donorID uuid.UUID, resType string, quantity int, priority string) *dto.ResourceResponse {
	t.Helper()
	resource, err := svc.Create(donorID, &dto.CreateResourceRequest{
		Type:     resType,
		Name:     "test " + resType,
		Quantity: quantity,
		Unit:     "ชิ้น",
		Priority: priority,
	})
	require.NoError(t, err)
	return resource
}

func createNeed(t *testing.T, svc *NeedService, requesterID uuid.UUID, resType string, quantity int, urgency string) *dto.NeedResponse {
	t.Helper()
	need, err := svc.Create(requesterID, &dto.CreateNeedRequest{
		ResourceType:     resType,
		RequiredQuantity: quantity,
		Unit:             "ชิ้น",
		Urgency:          urgency,
	})
	require.NoError(t, err)
	return need
}

func TestFindMatches(t *testing.T) {
	db := newTestDB(t)
	resources := NewResourceService(db)
	needs := NewNeedService(db)
	matcher := NewMatchService(db)
	donor := uuid.New()
	requester := uuid.New()

	// A satisfies the need; the rest each fail one predicate
	a := createResource(t, resources, donor, "water", 20, "high")
	createResource(t, resources, donor, "food", 20, "high")  // wrong type
	createResource(t, resources, donor, "water", 5, "high")  // too little
	createResource(t, resources, donor, "water", 20, "low")  // wrong priority
	assigned := createResource(t, resources, donor, "water", 20, "high")
	_, err := resources.UpdateStatus(assigned.ID, models.ResourceAssigned)
	require.NoError(t, err)

	need := createNeed(t, needs, requester, "water", 10, "high")

	matches, err := matcher.FindMatches(need.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, a.ID, matches[0].ID)
}

func TestFindMatchesUnknownNeed(t *testing.T) {
	db := newTestDB(t)
	matcher := NewMatchService(db)

	matches, err := matcher.FindMatches(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatch(t *testing.T) {
	db := newTestDB(t)
	resources := NewResourceService(db)
	needs := NewNeedService(db)
	matcher := NewMatchService(db)

	resource := createResource(t, resources, uuid.New(), "food", 50, "critical")
	need := createNeed(t, needs, uuid.New(), "food", 30, "critical")

	require.NoError(t, matcher.Match(resource.ID, need.ID))

	gotResource, err := resources.Get(resource.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResourceAssigned, gotResource.Status)

	gotNeed, err := needs.Get(need.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NeedMatched, gotNeed.Status)
	require.NotNil(t, gotNeed.MatchedResourceID)
	assert.Equal(t, resource.ID, *gotNeed.MatchedResourceID)
}

func TestMatchIncompatible(t *testing.T) {
	db := newTestDB(t)
	resources := NewResourceService(db)
	needs := NewNeedService(db)
	matcher := NewMatchService(db)

	resource := createResource(t, resources, uuid.New(), "water", 5, "high")
	need := createNeed(t, needs, uuid.New(), "water", 10, "high")

	err := matcher.Match(resource.ID, need.ID)
	assert.ErrorIs(t, err, ErrNotMatchable)

	// nothing changed
	gotResource, err := resources.Get(resource.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResourceAvailable, gotResource.Status)
}

func TestMatchConflict(t *testing.T) {
	db := newTestDB(t)
	resources := NewResourceService(db)
	needs := NewNeedService(db)
	matcher := NewMatchService(db)

	resource := createResource(t, resources, uuid.New(), "medicine", 10, "high")
	first := createNeed(t, needs, uuid.New(), "medicine", 5, "high")
	second := createNeed(t, needs, uuid.New(), "medicine", 5, "high")

	require.NoError(t, matcher.Match(resource.ID, first.ID))

	// resource is already assigned, so the second pairing must roll back
	err := matcher.Match(resource.ID, second.ID)
	assert.ErrorIs(t, err, ErrMatchConflict)

	gotSecond, err := needs.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NeedPending, gotSecond.Status)
	assert.Nil(t, gotSecond.MatchedResourceID)
}

func TestMatchUnknownResource(t *testing.T) {
	db := newTestDB(t)
	needs := NewNeedService(db)
	matcher := NewMatchService(db)

	need := createNeed(t, needs, uuid.New(), "water", 1, "medium")

	err := matcher.Match(uuid.New(), need.ID)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestMatchUnknownNeed(t *testing.T) {
	db := newTestDB(t)
	resources := NewResourceService(db)
	matcher := NewMatchService(db)

	resource := createResource(t, resources, uuid.New(), "water", 1, "medium")

	err := matcher.Match(resource.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNeedNotFound)
}
