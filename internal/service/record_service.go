package service

import (
	"fmt"
	"time"

	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recent listings return at most this many records, oldest first.
const recentLimit = 5

type RecordService interface {
	SubmitComplaint(actorID, title, description string) error
	SubmitSuggestion(actorID, title, description string) error
	RecentComplaints(actorID string) ([]models.Record, error)
	RecentSuggestions(actorID string) ([]models.Record, error)
}

type recordService struct {
	userRepo repository.UserRepository
}

func NewRecordService(userRepo repository.UserRepository) RecordService {
	return &recordService{userRepo: userRepo}
}

func (s *recordService) loadUser(actorID string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	user, err := s.userRepo.GetUserByID(objID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return user, nil
}

func (s *recordService) SubmitComplaint(actorID, title, description string) error {
	if title == "" || description == "" {
		return fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	user, err := s.loadUser(actorID)
	if err != nil {
		return err
	}

	user.Complaints = append(user.Complaints, models.Record{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
	})
	return s.userRepo.UpdateUser(user)
}

func (s *recordService) SubmitSuggestion(actorID, title, description string) error {
	if title == "" || description == "" {
		return fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	user, err := s.loadUser(actorID)
	if err != nil {
		return err
	}

	now := time.Now()
	user.Suggestions = append(user.Suggestions, models.Record{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		Date:        &now,
	})
	return s.userRepo.UpdateUser(user)
}

func lastRecords(records []models.Record) []models.Record {
	if len(records) > recentLimit {
		return records[len(records)-recentLimit:]
	}
	return records
}

func (s *recordService) RecentComplaints(actorID string) ([]models.Record, error) {
	user, err := s.loadUser(actorID)
	if err != nil {
		return nil, err
	}
	return lastRecords(user.Complaints), nil
}

func (s *recordService) RecentSuggestions(actorID string) ([]models.Record, error) {
	user, err := s.loadUser(actorID)
	if err != nil {
		return nil, err
	}
	return lastRecords(user.Suggestions), nil
}
