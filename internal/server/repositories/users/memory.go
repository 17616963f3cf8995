package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/syp-project/authd/internal/common"
	"github.com/syp-project/authd/internal/server/models"
)

// MemoryRepository keeps principals in process memory. It is volatile by
// design: the store lives and dies with the process. Safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*models.User),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := cloneUser(user)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byEmail[stored.Email] = stored

	return cloneUser(stored), nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return cloneUser(user), nil
}

// cloneUser copies a principal, including the hash bytes, so callers can
// never alias the stored state.
func cloneUser(u *models.User) *models.User {
	c := *u
	c.PasswordHash = make([]byte, len(u.PasswordHash))
	copy(c.PasswordHash, u.PasswordHash)
	return &c
}
