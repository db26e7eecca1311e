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

// IGuestRepository provides access to guests.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	Save(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindByEmailOrPhone(ctx context.Context, eventID uint, email, phone string) (*models.Guest, error)
	FindByEventID(ctx context.Context, eventID uint) ([]models.Guest, error)
	AssignTable(ctx context.Context, guestID, tableID uint) error
}

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository() IGuestRepository {
	return &GuestRepository{db: configsdatabase.GetDB()}
}

func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	return &GuestRepository{db: tx}
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

// Save writes all mutable guest fields back (full replace semantics).
func (r *GuestRepository) Save(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByID failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// FindByEmailOrPhone locates an existing guest for the event by contact
// identity. The email condition comes first, so an email match wins when both
// conditions would hit different rows. Empty values never participate; the
// caller must not invoke this with both empty.
func (r *GuestRepository) FindByEmailOrPhone(ctx context.Context, eventID uint, email, phone string) (*models.Guest, error) {
	if email != "" {
		guest, err := r.findByField(ctx, eventID, "email", email)
		if err == nil || !errors.Is(err, ErrNotFound) {
			return guest, err
		}
	}
	if phone != "" {
		return r.findByField(ctx, eventID, "phone", phone)
	}
	return nil, ErrNotFound
}

func (r *GuestRepository) findByField(ctx context.Context, eventID uint, field, value string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND "+field+" = ?", eventID, value).
		Order("id ASC").
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByEmailOrPhone failed", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Preload("Table").
		Order("created_at DESC").
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindByEventID failed", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// AssignTable links the guest to the table without touching any other field.
func (r *GuestRepository) AssignTable(ctx context.Context, guestID, tableID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		Update("table_id", tableID)
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.AssignTable failed",
			zap.Uint("guestID", guestID), zap.Uint("tableID", tableID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IGuestRepository = (*GuestRepository)(nil)
