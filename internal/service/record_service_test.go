package service

import (
	"fmt"
	"testing"

	"hosteldesk/internal/models"
	"hosteldesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedUser(t *testing.T, repo *repository.MemoryUserRepository) *models.User {
	t.Helper()
	user := &models.User{
		ID:       primitive.NewObjectID(),
		UserType: models.UserTypeUser,
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
	}
	require.NoError(t, repo.SaveUser(user))
	return user
}

func TestSubmitComplaintValidation(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewRecordService(repo)
	user := seedUser(t, repo)

	assert.ErrorIs(t, svc.SubmitComplaint(user.ID.Hex(), "", "desc"), ErrValidation)
	assert.ErrorIs(t, svc.SubmitComplaint(user.ID.Hex(), "title", ""), ErrValidation)
}

func TestSubmitComplaintUnknownUser(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewRecordService(repo)

	err := svc.SubmitComplaint(primitive.NewObjectID().Hex(), "title", "desc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitComplaintAppendsPendingRecord(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewRecordService(repo)
	user := seedUser(t, repo)

	require.NoError(t, svc.SubmitComplaint(user.ID.Hex(), "Leaky tap", "Bathroom tap drips all night"))

	stored, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	require.Len(t, stored.Complaints, 1)

	rec := stored.Complaints[0]
	assert.Equal(t, "Leaky tap", rec.Title)
	assert.Equal(t, models.StatusPending, rec.Status)
	assert.NotEmpty(t, rec.ID)
	assert.Nil(t, rec.Date)
}

func TestSubmitSuggestionStampsDate(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewRecordService(repo)
	user := seedUser(t, repo)

	require.NoError(t, svc.SubmitSuggestion(user.ID.Hex(), "More benches", "Courtyard needs seating"))

	stored, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	require.Len(t, stored.Suggestions, 1)
	assert.Equal(t, models.StatusPending, stored.Suggestions[0].Status)
	require.NotNil(t, stored.Suggestions[0].Date)
}

func TestRecentComplaintsReturnsLastFiveInOrder(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewRecordService(repo)
	user := seedUser(t, repo)

	for i := 1; i <= 6; i++ {
		title := fmt.Sprintf("complaint %d", i)
		require.NoError(t, svc.SubmitComplaint(user.ID.Hex(), title, "details"))
	}

	recent, err := svc.RecentComplaints(user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, recent, 5)
	for i, rec := range recent {
		assert.Equal(t, fmt.Sprintf("complaint %d", i+2), rec.Title)
	}
}

func TestRecentComplaintsFewerThanFive(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewRecordService(repo)
	user := seedUser(t, repo)

	require.NoError(t, svc.SubmitComplaint(user.ID.Hex(), "only one", "details"))

	recent, err := svc.RecentComplaints(user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "only one", recent[0].Title)
}
