package service

import (
	"context"

	"fotoscavet-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Authenticate checks plaintext credentials against the Users table
	Authenticate(ctx context.Context, username, password string) (*model.UserProfile, error)

	// Diagnostics reports on the Users table (testUsers action)
	Diagnostics(ctx context.Context) (*model.UsersDiagnostics, error)

	// ImportUsers validates and upserts users
	ImportUsers(ctx context.Context, users []model.User) (int, error)
}
