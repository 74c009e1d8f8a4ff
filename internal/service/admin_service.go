package service

import (
	"fmt"

	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminService interface {
	ListAllProfiles(actorType string) ([]*models.User, error)
	ListAllComplaints(actorType string) ([]*models.ComplaintOverview, error)
	ListAllSuggestions(actorType string) ([]*models.SuggestionOverview, error)
	RemoveProfile(actorType, targetID string) error
	EditProfile(actorType, targetID string, update *models.ProfileUpdate) (*models.User, error)
}

type adminService struct {
	userRepo repository.UserRepository
}

func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func requireAdmin(actorType string) error {
	if actorType != models.UserTypeAdmin {
		return ErrForbidden
	}
	return nil
}

func (s *adminService) ListAllProfiles(actorType string) ([]*models.User, error) {
	if err := requireAdmin(actorType); err != nil {
		return nil, err
	}
	return s.userRepo.GetAllUsers()
}

func (s *adminService) ListAllComplaints(actorType string) ([]*models.ComplaintOverview, error) {
	if err := requireAdmin(actorType); err != nil {
		return nil, err
	}
	return s.userRepo.GetComplaintOverviews()
}

func (s *adminService) ListAllSuggestions(actorType string) ([]*models.SuggestionOverview, error) {
	if err := requireAdmin(actorType); err != nil {
		return nil, err
	}
	return s.userRepo.GetSuggestionOverviews()
}

func (s *adminService) RemoveProfile(actorType, targetID string) error {
	if err := requireAdmin(actorType); err != nil {
		return err
	}

	objID, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	deleted, err := s.userRepo.DeleteUser(objID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return nil
}

func (s *adminService) EditProfile(actorType, targetID string, update *models.ProfileUpdate) (*models.User, error) {
	if err := requireAdmin(actorType); err != nil {
		return nil, err
	}

	objID, err := primitive.ObjectIDFromHex(targetID)
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

	applyUpdate(user, update)

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// applyUpdate copies only the allow-listed fields that were present in the
// request body onto the stored document.
func applyUpdate(user *models.User, update *models.ProfileUpdate) {
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Mobile != nil {
		user.Mobile = *update.Mobile
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.PermanentAddress != nil {
		user.PermanentAddress = *update.PermanentAddress
	}
	if update.Course != nil {
		user.Course = *update.Course
	}
	if update.Department != nil {
		user.Department = *update.Department
	}
	if update.HostelBlock != nil {
		user.HostelBlock = *update.HostelBlock
	}
	if update.RoomNo != nil {
		user.RoomNo = *update.RoomNo
	}
	if update.YearOfStudy != nil {
		user.YearOfStudy = *update.YearOfStudy
	}
	if update.AdmissionNumber != nil {
		user.AdmissionNumber = *update.AdmissionNumber
	}
}
