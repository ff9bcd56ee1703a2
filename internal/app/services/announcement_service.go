package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentorhub/backend/internal/app/models"
	"github.com/mentorhub/backend/internal/app/repositories"
	"github.com/mentorhub/backend/internal/pkg/apperrors"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, announcement *models.Announcement) (int64, error)
	GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// announcementServiceImpl implements the AnnouncementService interface
type announcementServiceImpl struct {
	announcementRepo repositories.IAnnouncementRepository
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo repositories.IAnnouncementRepository) AnnouncementService {
	return &announcementServiceImpl{
		announcementRepo: announcementRepo,
	}
}

// CreateAnnouncement persists an announcement as supplied
func (s *announcementServiceImpl) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) (int64, error) {
	id, err := s.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}
	return id, nil
}

// GetAllAnnouncements retrieves all announcements
func (s *announcementServiceImpl) GetAllAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	announcements, err := s.announcementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving announcements: %w", err)
	}
	return announcements, nil
}

// DeleteAnnouncement deletes an announcement by id
func (s *announcementServiceImpl) DeleteAnnouncement(ctx context.Context, id int64) error {
	err := s.announcementRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnnouncementNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	return nil
}
