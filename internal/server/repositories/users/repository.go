// Package users holds the credential store: the set of registered principals
// keyed by email, with uniqueness enforced at insert.
package users

import (
	"context"

	"github.com/syp-project/authd/internal/server/models"
)

// Repository is the credential store contract. The store owns the set of
// principals; callers only insert and look up, there is no update or delete.
type Repository interface {
	// Create adds a new principal, assigning its ID and creation time.
	// Returns common.ErrorAlreadyExists when the email is already held;
	// under concurrent calls for the same email exactly one succeeds.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the principal registered under email, or
	// common.ErrorNotFound. Lookup is exact and case-sensitive.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
