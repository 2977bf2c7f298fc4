package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/security"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	accounts    account.Repository
	jwtProvider *security.JWTProvider
	logger      Logger
	tokenTTL    time.Duration
}

type Logger interface {
	Info(msg string)
	Error(msg string)
}

func NewAuthService(accounts account.Repository, jwtProvider *security.JWTProvider, logger Logger, tokenTTL time.Duration) *AuthService {
	return &AuthService{accounts: accounts, jwtProvider: jwtProvider, logger: logger, tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Branch   string
	CGPA     float64
	Skills   []string
}

type Session struct {
	Account   *account.Account
	Token     string
	ExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "email is required"
	}
	if input.Password == "" {
		fields["password"] = "password is required"
	} else if len(input.Password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid registration", fields)
	}

	branch := account.BranchCSE
	if trimmed := strings.TrimSpace(input.Branch); trimmed != "" {
		parsed, ok := account.ParseBranch(trimmed)
		if !ok {
			return nil, common.NewValidationError("invalid registration", map[string]string{"branch": "unknown branch"})
		}
		branch = parsed
	}
	if input.CGPA < 0 || input.CGPA > 10 {
		return nil, common.NewValidationError("invalid registration", map[string]string{"cgpa": "cgpa must be between 0 and 10"})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "account already exists with this email", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}
	created, err := s.accounts.Create(ctx, account.Account{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         account.RoleStudent,
		Branch:       branch,
		CGPA:         input.CGPA,
		Skills:       skills,
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("account registered account_id=%s", created.ID))
	return s.issueSession(created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.NewValidationError("invalid login", map[string]string{"email": "email and password are required"})
	}
	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			// Uniform failure so callers cannot probe which factor was wrong.
			return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
		}
		return nil, err
	}
	if !security.ComparePassword(acc.PasswordHash, password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
	}
	s.logInfo(fmt.Sprintf("account logged in account_id=%s", acc.ID))
	return s.issueSession(acc)
}

func (s *AuthService) issueSession(acc *account.Account) (*Session, error) {
	token, expiresAt, err := s.jwtProvider.Generate(acc.ID, s.tokenTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate token", err)
	}
	return &Session{Account: acc, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
