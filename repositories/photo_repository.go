package repositories

import (
	"context"

	"gather.link/configs/configsdatabase"
	"gather.link/configs/configslog"
	"gather.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IPhotoRepository provides access to event photos.
type IPhotoRepository interface {
	Create(ctx context.Context, photo *models.EventPhoto) error
	FindByEventID(ctx context.Context, eventID uint) ([]models.EventPhoto, error)
}

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository() IPhotoRepository {
	return &PhotoRepository{db: configsdatabase.GetDB()}
}

func NewPhotoRepositoryTx(tx *gorm.DB) IPhotoRepository {
	return &PhotoRepository{db: tx}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.EventPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.EventPhoto, error) {
	var photos []models.EventPhoto
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		configslog.Log.Error("PhotoRepository.FindByEventID failed", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return photos, nil
}

var _ IPhotoRepository = (*PhotoRepository)(nil)
