package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthmate/healthmate-backend/internal/common"
	"github.com/healthmate/healthmate-backend/internal/entity"
)

type FamilyRepository interface {
	Create(ctx context.Context, m *entity.FamilyMember) error
	// Update applies non-zero fields of "patch" to the member owned by userID.
	Update(ctx context.Context, id, userID uuid.UUID, patch entity.FamilyMember) (*entity.FamilyMember, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.FamilyMember, error)
}

type familyRepo struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewFamilyRepository(db *gorm.DB, logger *slog.Logger) FamilyRepository {
	return &familyRepo{db: db, logger: logger}
}

func (r *familyRepo) Create(ctx context.Context, m *entity.FamilyMember) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("failed to create family member", "user_id", m.UserID, "error", err)
		return err
	}
	return nil
}

func (r *familyRepo) Update(ctx context.Context, id, userID uuid.UUID, patch entity.FamilyMember) (*entity.FamilyMember, error) {
	var m entity.FamilyMember
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: family member %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to get family member", "member_id", id, "user_id", userID, "error", err)
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != "" {
		updates["name"] = patch.Name
	}
	if patch.Relation != "" {
		updates["relation"] = patch.Relation
	}
	if patch.Age != 0 {
		updates["age"] = patch.Age
	}
	if patch.Gender != "" {
		updates["gender"] = patch.Gender
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&m).Updates(updates).Error; err != nil {
			r.logger.Error("failed to update family member", "member_id", id, "user_id", userID, "error", err)
			return nil, err
		}
	}
	return &m, nil
}

func (r *familyRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.FamilyMember, error) {
	var list []entity.FamilyMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		r.logger.Error("failed to list family members", "user_id", userID, "error", err)
		return nil, err
	}
	return list, nil
}
