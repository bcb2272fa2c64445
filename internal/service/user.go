package service

import (
	"context"
	"fmt"

	"github.com/Chendasum/7daymoneyflowreset/internal/domain/entities"
)

type UserRepository interface {
	Ensure(ctx context.Context, user *entities.User) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// EnsureUser registers the user on first contact or refreshes chat details.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64, username string) error {
	user := entities.NewUser(userID, chatID, username)
	if err := s.repo.Ensure(ctx, user); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}
