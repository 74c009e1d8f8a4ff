package service

import (
	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityService interface {
	LogAction(actorID primitive.ObjectID, action, detail, ipAddress string, metadata map[string]interface{}) error
	ListEntries(actorType string, page, limit int) ([]*models.ActivityEntry, error)
}

type activityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) LogAction(actorID primitive.ObjectID, action, detail, ipAddress string, metadata map[string]interface{}) error {
	entry := &models.ActivityEntry{
		ActorID:   actorID,
		Action:    action,
		Detail:    detail,
		IPAddress: ipAddress,
		Metadata:  metadata,
	}
	return s.activityRepo.SaveEntry(entry)
}

func (s *activityService) ListEntries(actorType string, page, limit int) ([]*models.ActivityEntry, error) {
	if err := requireAdmin(actorType); err != nil {
		return nil, err
	}
	return s.activityRepo.GetAllEntries(page, limit)
}
