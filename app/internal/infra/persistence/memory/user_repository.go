package memory

import (
	"context"
	"sync"

	domuser "example.com/catalog-console/app/internal/domain/user"
)

// UserRepository holds the sandbox administrators configured at startup.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*domuser.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domuser.User), nextID: 1}
}

func (r *UserRepository) Add(username, passwordHash string) *domuser.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := &domuser.User{ID: r.nextID, Username: username, PasswordHash: passwordHash}
	r.nextID++
	r.users[username] = u
	cloned := *u
	return &cloned
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domuser.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[username]; ok {
		cloned := *u
		return &cloned, nil
	}
	return nil, domuser.ErrUserNotFound
}
