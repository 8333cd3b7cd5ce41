package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/domain"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
	"github.com/opsdeck/ams-backend/internal/pkg/logger"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, username, password string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ParseAccessToken(tokenString string) (uuid.UUID, error)
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func NewAuthService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL, refreshTTL time.Duration) AuthService {
	serviceLog := baseLog.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, *TokenPair, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, nil, fmt.Errorf("username and password are required: %w", errs.ErrInvalidArgument)
	}

	exists, err := s.userRepo.UsernameExists(ctx, nil, username)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, fmt.Errorf("user %q: %w", username, errs.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	created, err := s.userRepo.Create(ctx, nil, []*domain.User{{
		ID:       uuid.New(),
		Username: username,
		Password: string(hashed),
	}})
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(created[0].ID)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("Registered user", "username", username)
	return created[0], pair, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, *TokenPair, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("invalid credentials: %w", errs.ErrUnauthorized)
	}

	pair, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, nil, userID); err != nil {
		return nil, fmt.Errorf("unknown user: %w", errs.ErrUnauthorized)
	}
	return s.issueTokens(userID)
}

func (s *authService) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	return s.parseToken(tokenString, "access")
}

func (s *authService) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	access, err := s.signToken(userID, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(userID, "refresh", s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) signToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}

func (s *authService) parseToken(tokenString, wantType string) (uuid.UUID, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token: %w", errs.ErrUnauthorized)
	}
	if claims.TokenType != wantType {
		return uuid.Nil, fmt.Errorf("wrong token type: %w", errs.ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", errs.ErrUnauthorized)
	}
	return userID, nil
}
