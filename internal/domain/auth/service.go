package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// ChangePassword verifies the current password before storing a new hash
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error
}
