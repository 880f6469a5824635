package user

import (
	"context"
	"errors"
	"strings"

	"hostnhome/database"
	"hostnhome/models"
	"hostnhome/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) SignUp(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidEmail(email) {
		return nil, InputError{Message: "Please enter a valid email address"}
	}
	if !utils.IsValidPassword(password) {
		return nil, InputError{Message: "Password must be at least 6 characters"}
	}

	_, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, database.ErrNotFound):
		utils.GetLogger().Error("SignUp: failed to check email", zap.Error(err))
		return nil, ErrAuthFailed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrAuthFailed
	}
	u := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleVendor,
		VendorID:     uuid.New().String(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		utils.GetLogger().Error("SignUp: failed to create user", zap.Error(err))
		return nil, ErrAuthFailed
	}
	return s.issue(u)
}
