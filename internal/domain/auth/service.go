package auth

import "context"

// Service handles credential checks and token issuance. Identity lives in
// the same document store as everything else, under the users collection.
type Service interface {
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new pair.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}

// Repository defines data access for user credentials.
type Repository interface {
	// GetByEmail returns the user owning an email or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID returns one user or ErrUserNotFound.
	GetByID(ctx context.Context, id string) (User, error)
}
