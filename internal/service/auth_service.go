package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gameborrow/internal/config"
	"gameborrow/internal/models"
)

type AuthService interface {
	GenerateToken(userID string) (string, error)
	ParseToken(tokenString string) (string, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// GenerateToken signs an HS256 access token carrying the user id.
func (s *authService) GenerateToken(userID string) (string, error) {
	issued := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    issued.Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":    issued.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry and returns the user id claim.
func (s *authService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}

	if !token.Valid {
		return "", models.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.ErrUnauthenticated
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: missing userId claim", models.ErrUnauthenticated)
	}

	return userID, nil
}
