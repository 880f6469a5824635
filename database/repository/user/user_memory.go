package userRepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"hostnhome/database"
	"hostnhome/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryUserRepo keeps users in process.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &u, nil
}

// GetByIDWithProjection ignores the projection.
func (r *MemoryUserRepo) GetByIDWithProjection(ctx context.Context, id string, _ bson.M) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}
