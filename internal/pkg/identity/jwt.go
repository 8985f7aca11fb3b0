// Package identity проверяет bearer-токены. Токены выпускает внешний
// сервис авторизации, здесь только проверка подписи HS256 и поиск
// пользователя по claim userId.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/entities"
	"freight/internal/pkg/config"
	"freight/internal/service/policy"
	"freight/internal/service/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type JWTResolver struct {
	secret      []byte
	userService UserService
}

func NewJWTResolver(cfg *config.Auth, userService UserService) *JWTResolver {
	return &JWTResolver{
		secret:      []byte(cfg.JWTSecret),
		userService: userService,
	}
}

// Resolve возвращает владельца токена. Любая проблема с самим токеном или
// отсутствие пользователя - policy.ErrUnauthorized.
func (r *JWTResolver) Resolve(ctx context.Context, rawToken string) (*entities.User, error) {
	userID, err := r.parse(rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", policy.ErrUnauthorized, err)
	}

	usr, err := r.userService.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %w", policy.ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return usr, nil
}

// Sign выпускает токен для пользователя. Нужен утилитам и тестам,
// сам сервис токены не раздает.
func (r *JWTResolver) Sign(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(r.secret)
}

func (r *JWTResolver) parse(rawToken string) (uuid.UUID, error) {
	var c claims
	_, err := jwt.ParseWithClaims(
		rawToken,
		&c,
		func(*jwt.Token) (any, error) { return r.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("userId claim: %w", err)
	}
	return userID, nil
}
