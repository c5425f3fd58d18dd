package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthmate/healthmate-backend/internal/entity"
)

type VitalsRepository interface {
	Create(ctx context.Context, v *entity.VitalsEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.VitalsEntry, error)
}

type vitalsRepo struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewVitalsRepository(db *gorm.DB, logger *slog.Logger) VitalsRepository {
	return &vitalsRepo{db: db, logger: logger}
}

func (r *vitalsRepo) Create(ctx context.Context, v *entity.VitalsEntry) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		r.logger.Error("failed to create vitals entry", "user_id", v.UserID, "error", err)
		return err
	}
	return nil
}

func (r *vitalsRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.VitalsEntry, error) {
	var list []entity.VitalsEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Error("failed to list vitals", "user_id", userID, "error", err)
		return nil, err
	}
	return list, nil
}
