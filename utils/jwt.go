package utils

import (
	"errors"
	"time"

	"hostnhome/config"
	"hostnhome/models"

	"github.com/golang-jwt/jwt"
)

const defaultSecret = "HOSTNHOME"

func secretKey() []byte {
	if config.AppConfig.JWTSecret == "" {
		return []byte(defaultSecret)
	}
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT for the session. The token expires after
// the given duration.
func GenerateToken(session models.AuthSession, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   session.UserID,
		"email": session.Email,
		"role":  session.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}
	if session.VendorID != "" {
		claims["vendorId"] = session.VendorID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// SessionFromToken rebuilds the caller's AuthSession from a valid token.
func SessionFromToken(tokenString string) (*models.AuthSession, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleVendor
	}
	email, _ := claims["email"].(string)
	vendorID, _ := claims["vendorId"].(string)

	return &models.AuthSession{
		UserID:   sub,
		Email:    email,
		Role:     role,
		VendorID: vendorID,
	}, nil
}
