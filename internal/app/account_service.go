package app

import (
	"context"
	"strings"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
)

type AccountService struct {
	accounts account.Repository
}

func NewAccountService(accounts account.Repository) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) Get(ctx context.Context, id common.UUID) (*account.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// UpdateInput carries the self-service mutable fields. Nil means
// "leave unchanged"; email and role are immutable through this path.
type UpdateInput struct {
	Name   *string
	Branch *string
	CGPA   *float64
	Skills []string
}

func (s *AccountService) Update(ctx context.Context, id common.UUID, input UpdateInput) (*account.Account, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, common.NewValidationError("invalid update", map[string]string{"name": "name must not be empty"})
		}
		acc.Name = trimmed
	}
	if input.Branch != nil {
		parsed, ok := account.ParseBranch(strings.TrimSpace(*input.Branch))
		if !ok {
			return nil, common.NewValidationError("invalid update", map[string]string{"branch": "unknown branch"})
		}
		acc.Branch = parsed
	}
	if input.CGPA != nil {
		if *input.CGPA < 0 || *input.CGPA > 10 {
			return nil, common.NewValidationError("invalid update", map[string]string{"cgpa": "cgpa must be between 0 and 10"})
		}
		acc.CGPA = *input.CGPA
	}
	if input.Skills != nil {
		acc.Skills = input.Skills
	}
	return s.accounts.Update(ctx, *acc)
}

func (s *AccountService) List(ctx context.Context, roleFilter, nameSearch string) ([]account.Account, error) {
	filter := account.Filter{NameSearch: strings.TrimSpace(nameSearch)}
	if trimmed := strings.TrimSpace(roleFilter); trimmed != "" {
		role, ok := account.ParseRole(trimmed)
		if !ok {
			return nil, common.NewValidationError("invalid filter", map[string]string{"role": "role must be student, officer, or admin"})
		}
		filter.Role = role
	}
	return s.accounts.List(ctx, filter)
}

func (s *AccountService) Delete(ctx context.Context, id common.UUID) error {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if acc.Role == account.RoleAdmin {
		return common.NewError(common.CodeForbidden, "cannot delete admin accounts", nil)
	}
	return s.accounts.Delete(ctx, id)
}

func (s *AccountService) SetResume(ctx context.Context, id common.UUID, resume string) error {
	if _, err := s.accounts.GetByID(ctx, id); err != nil {
		return err
	}
	return s.accounts.SetResume(ctx, id, resume)
}
