package store

import (
	"context"
	"time"

	"github.com/Aayushkhairnar2101/Billing-system/types"
)

// UserRepository handles persistence for users.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername returns the first user with an exact, case-sensitive
// username match.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	mu := r.db.lock(usersFile)
	mu.Lock()
	defer mu.Unlock()

	for _, user := range loadCollection[types.User](r.db, usersFile) {
		if user.Username == username {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

// GetByCredentials returns the first user matching both username and
// password exactly.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (types.User, error) {
	mu := r.db.lock(usersFile)
	mu.Lock()
	defer mu.Unlock()

	for _, user := range loadCollection[types.User](r.db, usersFile) {
		if user.Username == username && user.Password == password {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

// Create appends the user to the collection, assigning the id and
// creation timestamp.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	mu := r.db.lock(usersFile)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	user.ID = now.UnixMilli()
	user.CreatedAt = now

	users := append(loadCollection[types.User](r.db, usersFile), user)
	if err := saveCollection(r.db, usersFile, users); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Count reports the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	mu := r.db.lock(usersFile)
	mu.Lock()
	defer mu.Unlock()

	return len(loadCollection[types.User](r.db, usersFile)), nil
}
