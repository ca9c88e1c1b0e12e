package service

import (
	"context"
	"errors"
	"fmt"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/domains/user/repository"
	"fotoscavet-backend/internal/shared"
	"fotoscavet-backend/pkg/logger"
)

const sampleUserLimit = 3

type userService struct {
	userRepo repository.Repository
}

func NewUserService(userRepo repository.Repository) ServiceInterface {
	return &userService{userRepo: userRepo}
}

// Authenticate returns the first row whose username and password both match.
// There is no hashing and no lockout.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.UserProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrTableNotFound) {
			return nil, model.NewStorageUnavailableError(model.MsgUsersTableMissing)
		}
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	// Blank rows must never authenticate an empty login.
	if username == "" {
		return nil, model.NewInvalidCredentialsError()
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			logger.Info("user logged in", map[string]interface{}{
				"username": username,
			})
			return u.ToProfile(), nil
		}
	}

	logger.Warn("login rejected", map[string]interface{}{
		"username": username,
	})
	return nil, model.NewInvalidCredentialsError()
}

func (s *userService) Diagnostics(ctx context.Context) (*model.UsersDiagnostics, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrTableNotFound) {
			return nil, model.NewStorageUnavailableError(model.MsgUsersTableMissingSetup)
		}
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	samples := make([]string, 0, sampleUserLimit)
	for _, u := range users {
		if len(samples) == sampleUserLimit {
			break
		}
		samples = append(samples, u.Username)
	}

	return &model.UsersDiagnostics{
		Message:     model.MsgUsersTableFound,
		SheetName:   shared.TableUsers,
		Headers:     shared.UserHeaders,
		UserCount:   len(users),
		SampleUsers: samples,
	}, nil
}

// ImportUsers rejects the whole batch if any record is invalid or a
// username repeats.
func (s *userService) ImportUsers(ctx context.Context, users []model.User) (int, error) {
	seen := make(map[string]bool, len(users))
	for i, u := range users {
		if err := u.Validate(); err != nil {
			return 0, fmt.Errorf("user %d: %w", i+1, err)
		}
		if seen[u.Username] {
			return 0, fmt.Errorf("user %d: duplicate username %q", i+1, u.Username)
		}
		seen[u.Username] = true
	}

	if err := s.userRepo.Import(ctx, users); err != nil {
		return 0, fmt.Errorf("failed to import users: %w", err)
	}

	logger.Info("users imported", map[string]interface{}{
		"count": len(users),
	})
	return len(users), nil
}
