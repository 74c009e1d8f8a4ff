package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserTypeAdmin = "admin"
	UserTypeUser  = "user"

	StatusPending = "Pending"
)

// Record is a complaint or suggestion embedded in a user document.
// Suggestions additionally carry a submission date.
type Record struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Status      string     `json:"status" bson:"status"`
	Date        *time.Time `json:"date,omitempty" bson:"date,omitempty"`
}

// User is one registered account, admin or resident. Credential fields are
// never serialized to JSON.
type User struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserType         string             `json:"usertype" bson:"usertype"`
	SecretKey        string             `json:"-" bson:"secretkey,omitempty"`
	FullName         string             `json:"fullname" bson:"fullname"`
	Email            string             `json:"email" bson:"email"`
	Mobile           string             `json:"mobile" bson:"mobile"`
	Password         string             `json:"-" bson:"password"`
	ConfirmPassword  string             `json:"-" bson:"confirmpassword"`
	Gender           string             `json:"gender,omitempty" bson:"gender,omitempty"`
	PermanentAddress string             `json:"permanentAddress,omitempty" bson:"permanentAddress,omitempty"`
	Course           string             `json:"course,omitempty" bson:"course,omitempty"`
	Department       string             `json:"department,omitempty" bson:"department,omitempty"`
	HostelBlock      string             `json:"hostelblock,omitempty" bson:"hostelblock,omitempty"`
	RoomNo           string             `json:"roomno,omitempty" bson:"roomno,omitempty"`
	YearOfStudy      string             `json:"yearOfStudy,omitempty" bson:"yearOfStudy,omitempty"`
	AdmissionNumber  string             `json:"admissionNumber,omitempty" bson:"admissionNumber,omitempty"`
	Complaints       []Record           `json:"complaints" bson:"complaints"`
	Suggestions      []Record           `json:"suggestions" bson:"suggestions"`
}

type RegisterRequest struct {
	UserType         string `json:"usertype"`
	SecretKey        string `json:"secretkey"`
	FullName         string `json:"fullname"`
	Email            string `json:"email"`
	Mobile           string `json:"mobile"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmpassword"`
	Gender           string `json:"gender"`
	PermanentAddress string `json:"permanentAddress"`
	Course           string `json:"course"`
	Department       string `json:"department"`
	HostelBlock      string `json:"hostelblock"`
	RoomNo           string `json:"roomno"`
	YearOfStudy      string `json:"yearOfStudy"`
	AdmissionNumber  string `json:"admissionNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RecordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProfileUpdate is the allow-listed partial update an admin may apply.
// Identity and credential fields are deliberately absent.
type ProfileUpdate struct {
	FullName         *string `json:"fullname"`
	Mobile           *string `json:"mobile"`
	Gender           *string `json:"gender"`
	PermanentAddress *string `json:"permanentAddress"`
	Course           *string `json:"course"`
	Department       *string `json:"department"`
	HostelBlock      *string `json:"hostelblock"`
	RoomNo           *string `json:"roomno"`
	YearOfStudy      *string `json:"yearOfStudy"`
	AdmissionNumber  *string `json:"admissionNumber"`
}

// ComplaintOverview is the per-account projection returned to admins.
type ComplaintOverview struct {
	Email      string   `json:"email" bson:"email"`
	FullName   string   `json:"fullname" bson:"fullname"`
	Complaints []Record `json:"complaints" bson:"complaints"`
}

type SuggestionOverview struct {
	Email       string   `json:"email" bson:"email"`
	FullName    string   `json:"fullname" bson:"fullname"`
	Suggestions []Record `json:"suggestions" bson:"suggestions"`
}
