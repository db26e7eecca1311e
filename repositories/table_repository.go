package repositories

import (
	"context"
	"errors"

	"gather.link/configs/configsdatabase"
	"gather.link/configs/configslog"
	"gather.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ITableRepository provides access to seating tables.
type ITableRepository interface {
	Create(ctx context.Context, table *models.Table) error
	FindFirstOccupied(ctx context.Context, eventID uint) (*models.Table, error)
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	FindByEventID(ctx context.Context, eventID uint) ([]models.Table, error)
}

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository() ITableRepository {
	return &TableRepository{db: configsdatabase.GetDB()}
}

func NewTableRepositoryTx(tx *gorm.DB) ITableRepository {
	return &TableRepository{db: tx}
}

func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

// FindFirstOccupied returns the first table (creation order) that already
// seats at least one confirmed guest, with only those confirmed guests
// preloaded. A freshly created, still-empty table is invisible to this query
// until a guest lands in it; the seating policy depends on exactly that.
func (r *TableRepository) FindFirstOccupied(ctx context.Context, eventID uint) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Where("EXISTS (SELECT 1 FROM guests WHERE guests.table_id = tables.id AND guests.rsvp_status = ? AND guests.deleted_at IS NULL)", models.RSVPStatusYes).
		Order("id ASC").
		Preload("Guests", "rsvp_status = ?", models.RSVPStatusYes).
		First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TableRepository.FindFirstOccupied failed", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Table{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		configslog.Log.Error("TableRepository.CountByEventID failed", zap.Uint("eventID", eventID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *TableRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.Table, error) {
	var tables []models.Table
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("number ASC").
		Preload("Guests").
		Find(&tables).Error
	if err != nil {
		configslog.Log.Error("TableRepository.FindByEventID failed", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return tables, nil
}

var _ ITableRepository = (*TableRepository)(nil)
