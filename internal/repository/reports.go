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

type ReportRepository interface {
	Create(ctx context.Context, rep *entity.Report) error
	// GetForUser enforces ownership: a report belonging to another user is
	// indistinguishable from a missing one.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error)
}

type reportRepo struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewReportRepository(db *gorm.DB, logger *slog.Logger) ReportRepository {
	return &reportRepo{db: db, logger: logger}
}

func (r *reportRepo) Create(ctx context.Context, rep *entity.Report) error {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(rep).Error; err != nil {
		r.logger.Error("failed to create report", "user_id", rep.UserID, "report_name", rep.ReportName, "error", err)
		return err
	}
	return nil
}

func (r *reportRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error) {
	var rep entity.Report
	err := r.db.WithContext(ctx).
		First(&rep, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: report %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to get report", "report_id", id, "user_id", userID, "error", err)
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	var reps []entity.Report
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reps).Error
	if err != nil {
		r.logger.Error("failed to list reports", "user_id", userID, "error", err)
		return nil, err
	}
	return reps, nil
}

// Delete removes the row and returns it so the caller can clean up the
// stored object. Insights referencing the report are left in place.
func (r *reportRepo) Delete(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error) {
	rep, err := r.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&entity.Report{}, "id = ?", rep.ID).Error; err != nil {
		r.logger.Error("failed to delete report", "report_id", id, "user_id", userID, "error", err)
		return nil, err
	}
	return rep, nil
}
