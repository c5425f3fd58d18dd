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

type InsightRepository interface {
	Create(ctx context.Context, ins *entity.Insight) error
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Insight, error)
	// ListByUser returns insights newest first with report metadata preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Insight, error)
	CountByReport(ctx context.Context, reportID uuid.UUID) (int64, error)
}

type insightRepo struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewInsightRepository(db *gorm.DB, logger *slog.Logger) InsightRepository {
	return &insightRepo{db: db, logger: logger}
}

func (r *insightRepo) Create(ctx context.Context, ins *entity.Insight) error {
	if ins.ID == uuid.Nil {
		ins.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Omit("Report").Create(ins).Error; err != nil {
		r.logger.Error("failed to create insight", "report_id", ins.ReportID, "user_id", ins.UserID, "error", err)
		return err
	}
	return nil
}

func (r *insightRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Insight, error) {
	var ins entity.Insight
	err := r.db.WithContext(ctx).
		Preload("Report").
		First(&ins, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: insight %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to get insight", "insight_id", id, "user_id", userID, "error", err)
		return nil, err
	}
	return &ins, nil
}

func (r *insightRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Insight, error) {
	var list []entity.Insight
	err := r.db.WithContext(ctx).
		Preload("Report").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Error("failed to list insights", "user_id", userID, "error", err)
		return nil, err
	}
	return list, nil
}

func (r *insightRepo) CountByReport(ctx context.Context, reportID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Insight{}).
		Where("report_id = ?", reportID).
		Count(&n).Error
	if err != nil {
		r.logger.Error("failed to count insights", "report_id", reportID, "error", err)
		return 0, err
	}
	return n, nil
}
