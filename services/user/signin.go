package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"hostnhome/database"
	"hostnhome/models"
	"hostnhome/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

func (s *DefaultUserService) ttl() time.Duration {
	if s.TokenTTL <= 0 {
		return defaultTokenTTL
	}
	return s.TokenTTL
}

// sessionFor builds the auth context for a user. Accounts without a role are
// treated as vendors.
func sessionFor(u *models.User) models.AuthSession {
	role := u.Role
	if role == "" {
		role = models.RoleVendor
	}
	return models.AuthSession{
		UserID:   u.ID,
		Email:    u.Email,
		Role:     role,
		VendorID: u.VendorID,
	}
}

func (s *DefaultUserService) issue(u *models.User) (*AuthResponse, error) {
	session := sessionFor(u)
	token, err := utils.GenerateToken(session, s.ttl())
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to sign token", zap.String("userId", u.ID), zap.Error(err))
		return nil, ErrAuthFailed
	}
	return &AuthResponse{Token: token, Session: session}, nil
}

func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, InputError{Message: "email and password are required"}
	}

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(userRec)
}

// GetUserByID returns the account without its password hash.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByIDWithProjection(ctx, id, bson.M{"password_hash": 0})
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}
