package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/config"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/identity"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	client := identity.NewClient(&config.Config{IdentityTimeout: time.Second})
	return NewUserService(db, client)
}

func TestSyncUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	userID := uuid.New()

	user, err := svc.Sync(userID, &dto.SyncUserRequest{
		Name:  "สมชาย ใจดี",
		Email: "somchai@example.com",
		Phone: "0891234567",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, models.RoleGeneralUser, user.Role)

	// same payload again leaves exactly one row
	again, err := svc.Sync(userID, &dto.SyncUserRequest{
		Name:  "สมชาย ใจดี",
		Email: "somchai@example.com",
		Phone: "0891234567",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, again.ID)

	list, err := svc.List("", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
}

func TestSyncUserDoesNotClobberRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	userID := uuid.New()

	_, err := svc.Sync(userID, &dto.SyncUserRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	promoted, err := svc.UpdateRole(context.Background(), userID, userID, models.RoleTechnician, "token")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, promoted.Role)

	// a stale session payload re-syncing with the default role must not
	// undo the promotion
	resynced, err := svc.Sync(userID, &dto.SyncUserRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, resynced.Role)
}

func TestSyncUserInvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.Sync(uuid.New(), &dto.SyncUserRequest{Name: "A", Email: "a@example.com", Role: "superuser"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateRoleLocalFallback(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	userID := uuid.New()

	_, err := svc.Sync(userID, &dto.SyncUserRequest{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	// the identity client is unconfigured, so the remote write fails and the
	// change lands locally with the pending flag raised
	user, err := svc.UpdateRole(context.Background(), userID, userID, models.RoleTechnician, "token")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, user.Role)
	assert.True(t, user.RoleSyncPending)
}

func TestUpdateRoleOnBehalfSkipsRemote(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	admin := uuid.New()
	target := uuid.New()

	_, err := svc.Sync(target, &dto.SyncUserRequest{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	user, err := svc.UpdateRole(context.Background(), admin, target, models.RoleAdmin, "admin-token")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.RoleSyncPending)
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	id := uuid.New()

	_, err := svc.UpdateRole(context.Background(), id, id, models.RoleAdmin, "token")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
