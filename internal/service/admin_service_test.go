package service

import (
	"testing"

	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdminOperationsForbiddenForUsers(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)

	_, err := svc.ListAllProfiles(models.UserTypeUser)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListAllComplaints(models.UserTypeUser)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListAllSuggestions("")
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.RemoveProfile(models.UserTypeUser, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.EditProfile(models.UserTypeUser, primitive.NewObjectID().Hex(), &models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListAllProfiles(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)

	seedUser(t, repo)
	require.NoError(t, repo.SaveUser(&models.User{
		ID:       primitive.NewObjectID(),
		UserType: models.UserTypeAdmin,
		FullName: "Warden",
		Email:    "warden@example.com",
	}))

	users, err := svc.ListAllProfiles(models.UserTypeAdmin)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestListAllComplaintsProjection(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)
	user := seedUser(t, repo)

	recordSvc := NewRecordService(repo)
	require.NoError(t, recordSvc.SubmitComplaint(user.ID.Hex(), "Leaky tap", "details"))

	overviews, err := svc.ListAllComplaints(models.UserTypeAdmin)
	require.NoError(t, err)
	require.Len(t, overviews, 1)
	assert.Equal(t, "asha@example.com", overviews[0].Email)
	assert.Equal(t, "Asha Rao", overviews[0].FullName)
	require.Len(t, overviews[0].Complaints, 1)
}

func TestRemoveProfile(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)
	user := seedUser(t, repo)

	require.NoError(t, svc.RemoveProfile(models.UserTypeAdmin, user.ID.Hex()))

	stored, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = svc.RemoveProfile(models.UserTypeAdmin, user.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveProfileBadID(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)

	err := svc.RemoveProfile(models.UserTypeAdmin, "not-an-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditProfileAppliesOnlyProvidedFields(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)
	user := seedUser(t, repo)

	room := "312"
	updated, err := svc.EditProfile(models.UserTypeAdmin, user.ID.Hex(), &models.ProfileUpdate{RoomNo: &room})
	require.NoError(t, err)
	assert.Equal(t, "312", updated.RoomNo)
	assert.Equal(t, "Asha Rao", updated.FullName)

	stored, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "312", stored.RoomNo)
	assert.Equal(t, models.UserTypeUser, stored.UserType)
}

func TestEditProfileUnknownID(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewAdminService(repo)

	_, err := svc.EditProfile(models.UserTypeAdmin, primitive.NewObjectID().Hex(), &models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}
