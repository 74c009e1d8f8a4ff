package service

import (
	"fmt"

	"hosteldesk/internal/auth"
	"hosteldesk/internal/config"
	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AccountService interface {
	Register(req *models.RegisterRequest) error
	Login(email, password string) (token, usertype string, err error)
	GetProfile(id string) (*models.User, error)
}

type accountService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAccountService(userRepo repository.UserRepository, cfg *config.Config) AccountService {
	return &accountService{userRepo: userRepo, cfg: cfg}
}

func (s *accountService) Register(req *models.RegisterRequest) error {
	if req.FullName == "" || req.Email == "" || req.Mobile == "" ||
		req.Password == "" || req.ConfirmPassword == "" || req.UserType == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	existing, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: user already exists", ErrConflict)
	}

	switch req.UserType {
	case models.UserTypeAdmin:
		// Admins register with the shared passphrase; confirmpassword is not
		// compared against password for them.
		if req.SecretKey != s.cfg.AdminSecretKey {
			return fmt.Errorf("%w: invalid secret key for admin registration", ErrValidation)
		}
	case models.UserTypeUser:
		if req.Password != req.ConfirmPassword {
			return fmt.Errorf("%w: passwords do not match", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: invalid usertype", ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:              primitive.NewObjectID(),
		UserType:        req.UserType,
		FullName:        req.FullName,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Password:        string(hashed),
		ConfirmPassword: string(hashed),
	}

	if req.UserType == models.UserTypeAdmin {
		user.SecretKey = req.SecretKey
	} else {
		user.Gender = req.Gender
		user.PermanentAddress = req.PermanentAddress
		user.Course = req.Course
		user.Department = req.Department
		user.HostelBlock = req.HostelBlock
		user.RoomNo = req.RoomNo
		user.YearOfStudy = req.YearOfStudy
		user.AdmissionNumber = req.AdmissionNumber
	}

	return s.userRepo.SaveUser(user)
}

func (s *accountService) Login(email, password string) (string, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", "", err
	}
	// Unknown email and wrong password fail identically.
	if user == nil {
		return "", "", ErrAuth
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrAuth
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.UserType, []byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", err
	}
	return token, user.UserType, nil
}

func (s *accountService) GetProfile(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
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
