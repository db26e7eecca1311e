package services

import (
	"context"
	"errors"

	"gather.link/configs/configslog"
	"gather.link/models"
	"gather.link/repositories"

	"go.uber.org/zap"
)

// PhotoInput describes an uploaded photo after the handler has stored the
// file. URL is the public path the stored file is served from.
type PhotoInput struct {
	Filename string
	URL      string
	Caption  string
}

// IPhotoService attaches photos to events on behalf of their owners.
type IPhotoService interface {
	AddPhoto(ctx context.Context, eventID, adminID uint, input PhotoInput) (*models.EventPhoto, error)
}

type PhotoService struct {
	events repositories.IEventRepository
	photos repositories.IPhotoRepository
}

func NewPhotoService() IPhotoService {
	return &PhotoService{
		events: repositories.NewEventRepository(),
		photos: repositories.NewPhotoRepository(),
	}
}

func (s *PhotoService) AddPhoto(ctx context.Context, eventID, adminID uint, input PhotoInput) (*models.EventPhoto, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.AdminID != adminID {
		return nil, ErrEventForbidden
	}

	photo := models.EventPhoto{
		Filename: input.Filename,
		URL:      input.URL,
		Caption:  input.Caption,
		EventID:  eventID,
	}
	if err := s.photos.Create(ctx, &photo); err != nil {
		configslog.Log.Error("photo creation failed", zap.Uint("eventID", eventID), zap.Error(err))
		return nil, err
	}
	return &photo, nil
}

var _ IPhotoService = (*PhotoService)(nil)
