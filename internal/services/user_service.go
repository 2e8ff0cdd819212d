package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/identity"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// UserService mirrors identity-provider accounts into the local users table
// and keeps the role consistent across both stores.
type UserService struct {
	db       *gorm.DB
	identity *identity.Client
}

func NewUserService(db *gorm.DB, identityClient *identity.Client) *UserService {
	return &UserService{db: db, identity: identityClient}
}

// Sync upserts the caller's provider profile, keyed on the provider-assigned
// ID. Repeated calls with the same payload leave exactly one row.
func (s *UserService) Sync(userID uuid.UUID, req *dto.SyncUserRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleGeneralUser
	}
	if !models.UserRoles[role] {
		return nil, ErrInvalidRole
	}

	user := models.User{
		ID:        userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      role,
		AvatarURL: req.AvatarURL,
	}

	// Role is intentionally not overwritten on re-sync; it is owned by
	// UpdateRole so a stale session payload cannot clobber a change.
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone", "avatar_url", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	return s.Get(userID)
}

func (s *UserService) Get(id uuid.UUID) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return mapUserToResponse(&user), nil
}

func (s *UserService) List(role string, page, limit int) (*dto.UsersListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, err
	}

	resp := &dto.UsersListResponse{
		Users:      make([]dto.UserResponse, len(users)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	for i, u := range users {
		resp.Users[i] = *mapUserToResponse(&u)
	}
	return resp, nil
}

// UpdateRole is a dual write: the identity provider's metadata bag and the
// local row. The provider only lets a session edit its own account, so the
// remote write is attempted only when the caller is the target; any remote
// failure is tolerated and recorded as role_sync_pending so the divergence
// can be reconciled later. The local write always happens.
func (s *UserService) UpdateRole(ctx context.Context, callerID, targetID uuid.UUID, role, callerToken string) (*dto.UserResponse, error) {
	if !models.UserRoles[role] {
		return nil, ErrInvalidRole
	}

	syncPending := true
	if callerID == targetID {
		err := s.identity.UpdateUserMetadata(ctx, callerToken, map[string]interface{}{"role": role})
		if err == nil {
			syncPending = false
		} else {
			slog.Warn("identity provider role update failed, keeping local role only",
				"user_id", targetID.String(), "error", err.Error())
		}
	}

	result := s.db.Model(&models.User{}).Where("id = ?", targetID).Updates(map[string]interface{}{
		"role":              role,
		"role_sync_pending": syncPending,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.Get(targetID)
}

func mapUserToResponse(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            u.Role,
		AvatarURL:       u.AvatarURL,
		RoleSyncPending: u.RoleSyncPending,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       u.UpdatedAt.Format(time.RFC3339),
	}
}
