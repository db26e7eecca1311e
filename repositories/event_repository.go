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

// EventWithGuestCount pairs an event with the number of guests it has,
// for the admin listing.
type EventWithGuestCount struct {
	models.Event
	GuestCount int64 `json:"guestCount"`
}

// IEventRepository provides access to events.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByIDFull(ctx context.Context, id uint) (*models.Event, error)
	FindActive(ctx context.Context) ([]models.Event, error)
	FindByAdminID(ctx context.Context, adminID uint) ([]EventWithGuestCount, error)
	Update(ctx context.Context, event *models.Event, fields map[string]interface{}) error
	Delete(ctx context.Context, event *models.Event) error
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository() IEventRepository {
	return &EventRepository{db: configsdatabase.GetDB()}
}

func NewEventRepositoryTx(tx *gorm.DB) IEventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

// FindByIDFull loads the whole event graph: guests with their tables (newest
// first), tables with their guests (by number) and photos (newest first).
func (r *EventRepository) FindByIDFull(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Guests", func(db *gorm.DB) *gorm.DB {
			return db.Order("guests.created_at DESC")
		}).
		Preload("Guests.Table").
		Preload("Tables", func(db *gorm.DB) *gorm.DB {
			return db.Order("tables.number ASC")
		}).
		Preload("Tables.Guests").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_photos.created_at DESC")
		}).
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByIDFull failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) FindActive(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindActive failed", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) FindByAdminID(ctx context.Context, adminID uint) ([]EventWithGuestCount, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindByAdminID failed", zap.Uint("adminID", adminID), zap.Error(err))
		return nil, err
	}

	result := make([]EventWithGuestCount, 0, len(events))
	for _, event := range events {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Guest{}).Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
			configslog.Log.Error("EventRepository.FindByAdminID guest count failed", zap.Uint("eventID", event.ID), zap.Error(err))
			return nil, err
		}
		result = append(result, EventWithGuestCount{Event: event, GuestCount: count})
	}
	return result, nil
}

func (r *EventRepository) Update(ctx context.Context, event *models.Event, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(event).Updates(fields)
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Update failed", zap.Uint("id", event.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, event *models.Event) error {
	result := r.db.WithContext(ctx).Delete(event)
	if result.Error != nil {
		configslog.Log.Error("EventRepository.Delete failed", zap.Uint("id", event.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IEventRepository = (*EventRepository)(nil)
