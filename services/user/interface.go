package user

import (
	"context"
	"time"

	userRepo "hostnhome/database/repository/user"
	"hostnhome/models"
)

type UserService interface {
	// SignIn checks the credentials and issues a token for the account.
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	// SignUp registers a vendor account with its own vendor id.
	SignUp(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

func NewUserService(repo userRepo.UserRepository, tokenTTL time.Duration) *DefaultUserService {
	return &DefaultUserService{Repo: repo, TokenTTL: tokenTTL}
}

// AuthResponse contains the token and the session it encodes.
type AuthResponse struct {
	Token   string             `json:"token"`
	Session models.AuthSession `json:"user"`
}
