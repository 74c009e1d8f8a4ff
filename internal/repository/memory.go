package repository

import (
	"sort"
	"sync"
	"time"

	"hosteldesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository is an in-memory UserRepository used by the tests.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]*models.User)}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Complaints = append([]models.Record(nil), u.Complaints...)
	c.Suggestions = append([]models.Record(nil), u.Suggestions...)
	return &c
}

func (r *MemoryUserRepository) SaveUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *MemoryUserRepository) GetUserByID(id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *MemoryUserRepository) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) sortedUsers() []*models.User {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID.Hex() < users[j].ID.Hex()
	})
	return users
}

func (r *MemoryUserRepository) GetAllUsers() ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedUsers(), nil
}

func (r *MemoryUserRepository) GetComplaintOverviews() ([]*models.ComplaintOverview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var overviews []*models.ComplaintOverview
	for _, user := range r.sortedUsers() {
		overviews = append(overviews, &models.ComplaintOverview{
			Email:      user.Email,
			FullName:   user.FullName,
			Complaints: user.Complaints,
		})
	}
	return overviews, nil
}

func (r *MemoryUserRepository) GetSuggestionOverviews() ([]*models.SuggestionOverview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var overviews []*models.SuggestionOverview
	for _, user := range r.sortedUsers() {
		overviews = append(overviews, &models.SuggestionOverview{
			Email:       user.Email,
			FullName:    user.FullName,
			Suggestions: user.Suggestions,
		})
	}
	return overviews, nil
}

func (r *MemoryUserRepository) UpdateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *MemoryUserRepository) DeleteUser(id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// MemoryActivityRepository is an in-memory ActivityRepository used by the tests.
type MemoryActivityRepository struct {
	mu      sync.Mutex
	entries []*models.ActivityEntry
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{}
}

func (r *MemoryActivityRepository) SaveEntry(entry *models.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	entry.Timestamp = time.Now()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MemoryActivityRepository) GetAllEntries(page, limit int) ([]*models.ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, matching the Mongo implementation's sort.
	reversed := make([]*models.ActivityEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		reversed = append(reversed, r.entries[i])
	}

	start := (page - 1) * limit
	if start >= len(reversed) {
		return nil, nil
	}
	end := start + limit
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end], nil
}
