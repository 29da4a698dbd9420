package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/repository"
	"patient-transport-backend/pkg/utils"

	"go.uber.org/zap"
)

// SessionStore persists issued tokens by their jti
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	FindSession(ctx context.Context, tokenID string) (*models.Session, error)
	RevokeSession(ctx context.Context, tokenID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type AuthService struct {
	userRepo  *repository.UserRepository
	sessions  SessionStore
	auditRepo *repository.AuditRepository
	logger    *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, sessions SessionStore, auditRepo *repository.AuditRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		sessions:  sessions,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	GroupID   uint   `json:"group_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Login authenticates a user and issues an access token backed by a session
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperror.Required("email")
	}
	if password == "" {
		return nil, apperror.Required("password")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, apperror.Internal(err, "failed to find user")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperror.Unauthorized("invalid credentials")
	}
	if !user.Active {
		return nil, apperror.Unauthorized("user is inactive")
	}

	token, claims, err := utils.GenerateAccessToken(user.ID, user.GroupID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to generate access token")
	}

	session := &models.Session{
		TokenID:   claims.ID,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, apperror.Internal(err, "failed to store session")
	}

	// Log login action
	if err := s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_login", fmt.Sprintf("User %s logged in", user.Email)); err != nil {
		s.logger.Warn("failed to write audit log", zap.String("action", "user_login"), zap.Error(err))
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User: UserResponse{
			ID:        user.ID,
			GroupID:   user.GroupID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	}, nil
}

// Validate checks the token and its session. Revoked, expired and unknown
// sessions are rejected.
func (s *AuthService) Validate(ctx context.Context, token string) (*utils.Claims, error) {
	if token == "" {
		return nil, apperror.Unauthorized("token is missing")
	}

	claims, err := utils.ValidateAccessToken(token)
	if err != nil {
		return nil, apperror.Unauthorized("invalid or expired token")
	}

	session, err := s.sessions.FindSession(ctx, claims.ID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("invalid or expired token")
		}
		return nil, apperror.Internal(err, "failed to find session")
	}
	if session.Revoked || !time.Now().Before(session.ExpiresAt) || session.UserID != claims.UserID {
		return nil, apperror.Unauthorized("invalid or expired token")
	}

	return claims, nil
}

// Logout invalidates the session of a token. The signature must be valid;
// expiry is ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperror.Required("token")
	}

	claims, err := utils.ParseAccessTokenIgnoringExpiry(token)
	if err != nil {
		return apperror.Unauthorized("invalid token")
	}

	if err := s.sessions.RevokeSession(ctx, claims.ID); err != nil {
		return apperror.Internal(err, "failed to revoke session")
	}

	userID := claims.UserID
	if err := s.auditRepo.CreateAuditLog(ctx, &userID, "user_logout", fmt.Sprintf("User ID %d logged out", userID)); err != nil {
		s.logger.Warn("failed to write audit log", zap.String("action", "user_logout"), zap.Error(err))
	}
	return nil
}
