package app

import (
	"context"
	"strings"
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
)

type ListingService struct {
	listings listing.Repository
	accounts account.Repository
}

func NewListingService(listings listing.Repository, accounts account.Repository) *ListingService {
	return &ListingService{listings: listings, accounts: accounts}
}

type ListingInput struct {
	CompanyName      string
	Role             string
	Package          float64
	Description      string
	Location         string
	MinCGPA          float64
	EligibleBranches []string
	RequiredSkills   []string
	Rounds           []RoundInput
	Deadline         *time.Time
}

type RoundInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (s *ListingService) Create(ctx context.Context, createdBy common.UUID, input ListingInput) (*listing.Listing, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.CompanyName) == "" {
		fields["company_name"] = "company name is required"
	}
	if strings.TrimSpace(input.Role) == "" {
		fields["role"] = "role is required"
	}
	if input.Package <= 0 {
		fields["package"] = "package is required"
	}
	if input.MinCGPA <= 0 {
		fields["min_cgpa"] = "min cgpa is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid listing", fields)
	}
	if input.MinCGPA > 10 {
		return nil, common.NewValidationError("invalid listing", map[string]string{"min_cgpa": "min cgpa must be between 0 and 10"})
	}
	branches, err := parseBranchInputs(input.EligibleBranches)
	if err != nil {
		return nil, err
	}
	rounds, err := parseRoundInputs(input.Rounds)
	if err != nil {
		return nil, err
	}
	skills := input.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return s.listings.Create(ctx, listing.Listing{
		CompanyName:      strings.TrimSpace(input.CompanyName),
		Role:             strings.TrimSpace(input.Role),
		Package:          input.Package,
		Description:      input.Description,
		Location:         input.Location,
		MinCGPA:          input.MinCGPA,
		EligibleBranches: branches,
		RequiredSkills:   skills,
		Rounds:           rounds,
		Deadline:         input.Deadline,
		CreatedBy:        createdBy,
	})
}

// List filters by the viewer's eligibility when the viewer is a
// student; officers and admins see everything.
func (s *ListingService) List(ctx context.Context, viewer *account.Account) ([]listing.Listing, error) {
	if viewer.Role == account.RoleStudent {
		return s.listings.ListEligible(ctx, viewer.CGPA, viewer.Branch)
	}
	return s.listings.ListAll(ctx)
}

func (s *ListingService) Get(ctx context.Context, id common.UUID) (*listing.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

// UpdateListingInput merges onto the stored record; nil leaves a field
// unchanged.
type UpdateListingInput struct {
	CompanyName      *string
	Role             *string
	Package          *float64
	Description      *string
	Location         *string
	MinCGPA          *float64
	EligibleBranches []string
	RequiredSkills   []string
	Rounds           []RoundInput
	Deadline         *time.Time
}

func (s *ListingService) Update(ctx context.Context, id common.UUID, input UpdateListingInput) (*listing.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.CompanyName != nil {
		trimmed := strings.TrimSpace(*input.CompanyName)
		if trimmed == "" {
			return nil, common.NewValidationError("invalid listing", map[string]string{"company_name": "company name must not be empty"})
		}
		l.CompanyName = trimmed
	}
	if input.Role != nil {
		trimmed := strings.TrimSpace(*input.Role)
		if trimmed == "" {
			return nil, common.NewValidationError("invalid listing", map[string]string{"role": "role must not be empty"})
		}
		l.Role = trimmed
	}
	if input.Package != nil {
		if *input.Package < 0 {
			return nil, common.NewValidationError("invalid listing", map[string]string{"package": "package must not be negative"})
		}
		l.Package = *input.Package
	}
	if input.Description != nil {
		l.Description = *input.Description
	}
	if input.Location != nil {
		l.Location = *input.Location
	}
	if input.MinCGPA != nil {
		if *input.MinCGPA < 0 || *input.MinCGPA > 10 {
			return nil, common.NewValidationError("invalid listing", map[string]string{"min_cgpa": "min cgpa must be between 0 and 10"})
		}
		l.MinCGPA = *input.MinCGPA
	}
	if input.EligibleBranches != nil {
		branches, err := parseBranchInputs(input.EligibleBranches)
		if err != nil {
			return nil, err
		}
		l.EligibleBranches = branches
	}
	if input.RequiredSkills != nil {
		l.RequiredSkills = input.RequiredSkills
	}
	if input.Rounds != nil {
		rounds, err := parseRoundInputs(input.Rounds)
		if err != nil {
			return nil, err
		}
		l.Rounds = rounds
	}
	if input.Deadline != nil {
		l.Deadline = input.Deadline
	}
	return s.listings.Update(ctx, *l)
}

func (s *ListingService) Delete(ctx context.Context, id common.UUID) error {
	if _, err := s.listings.GetByID(ctx, id); err != nil {
		return err
	}
	return s.listings.Delete(ctx, id)
}

// EligibleStudents returns the students clearing the listing's CGPA
// threshold within its eligible branches.
func (s *ListingService) EligibleStudents(ctx context.Context, listingID common.UUID) ([]account.Account, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return s.accounts.ListEligible(ctx, l.MinCGPA, l.EligibleBranches)
}

func parseBranchInputs(values []string) ([]account.Branch, error) {
	branches := make([]account.Branch, 0, len(values))
	for _, value := range values {
		parsed, ok := account.ParseBranch(strings.TrimSpace(value))
		if !ok {
			return nil, common.NewValidationError("invalid listing", map[string]string{"eligible_branches": "unknown branch: " + value})
		}
		branches = append(branches, parsed)
	}
	return branches, nil
}

func parseRoundInputs(values []RoundInput) ([]listing.Round, error) {
	rounds := make([]listing.Round, 0, len(values))
	for _, value := range values {
		parsed, ok := listing.ParseRoundType(strings.TrimSpace(value.Type))
		if !ok {
			return nil, common.NewValidationError("invalid listing", map[string]string{"rounds": "unknown round type: " + value.Type})
		}
		rounds = append(rounds, listing.Round{Name: strings.TrimSpace(value.Name), Type: parsed})
	}
	return rounds, nil
}
