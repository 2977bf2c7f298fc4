package app

import (
	"context"
	"strings"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/application"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
)

// ApplicationService owns the eligibility rules, the status lifecycle
// and the placement-flag reconciliation around them.
type ApplicationService struct {
	applications application.Repository
	listings     listing.Repository
	accounts     account.Repository
}

func NewApplicationService(applications application.Repository, listings listing.Repository, accounts account.Repository) *ApplicationService {
	return &ApplicationService{applications: applications, listings: listings, accounts: accounts}
}

// ListingSummary is the denormalized slice of a listing attached to
// application reads. It is joined on demand, never stored.
type ListingSummary struct {
	ID          common.UUID     `json:"id"`
	CompanyName string          `json:"company_name"`
	Role        string          `json:"role"`
	Package     float64         `json:"package"`
	Location    string          `json:"location,omitempty"`
	Rounds      []listing.Round `json:"rounds,omitempty"`
}

type StudentSummary struct {
	ID       common.UUID    `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Branch   account.Branch `json:"branch"`
	CGPA     float64        `json:"cgpa"`
	Skills   []string       `json:"skills,omitempty"`
	IsPlaced bool           `json:"is_placed"`
}

// Detail is an application with its cross-references resolved. Either
// summary may be nil when the referenced record no longer exists.
type Detail struct {
	application.Application
	Listing *ListingSummary `json:"listing,omitempty"`
	Student *StudentSummary `json:"student,omitempty"`
}

// Apply runs the eligibility gauntlet in order, each failure distinct:
// listing exists, CGPA threshold, branch membership, no duplicate. The
// storage uniqueness constraint backs the duplicate pre-check; its
// violation surfaces as the same conflict.
func (s *ApplicationService) Apply(ctx context.Context, student *account.Account, listingID common.UUID) (*Detail, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if student.CGPA < l.MinCGPA {
		return nil, common.NewError(common.CodeForbidden, "does not meet the minimum CGPA requirement", nil)
	}
	if !branchEligible(student.Branch, l.EligibleBranches) {
		return nil, common.NewError(common.CodeForbidden, "branch is not eligible for this listing", nil)
	}
	if _, err := s.applications.FindByStudentAndListing(ctx, student.ID, listingID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this listing", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.applications.Create(ctx, application.Application{
		StudentID:    student.ID,
		ListingID:    listingID,
		Status:       application.StatusApplied,
		CurrentRound: "",
	})
	if err != nil {
		return nil, err
	}
	return &Detail{
		Application: *created,
		Listing:     listingSummary(l),
		Student:     studentSummary(student),
	}, nil
}

type StatusUpdateInput struct {
	Status       string
	CurrentRound *string
	Remarks      *string
}

// UpdateStatus applies the given fields verbatim. Any status may be
// set from any status; only enum membership is checked. Selected and
// Rejected carry the placement-flag side effects.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id common.UUID, input StatusUpdateInput) (*Detail, error) {
	status, ok := application.ParseStatus(strings.TrimSpace(input.Status))
	if !ok {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be Applied, Aptitude, Technical, HR, Selected, or Rejected"})
	}
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Status = status
	if input.CurrentRound != nil {
		app.CurrentRound = *input.CurrentRound
	}
	if input.Remarks != nil {
		app.Remarks = *input.Remarks
	}
	updated, err := s.applications.Update(ctx, *app)
	if err != nil {
		return nil, err
	}
	switch status {
	case application.StatusSelected:
		if err := s.accounts.SetPlaced(ctx, updated.StudentID, true); err != nil {
			return nil, err
		}
	case application.StatusRejected:
		if err := s.reconcilePlacement(ctx, updated); err != nil {
			return nil, err
		}
	}
	return s.attach(ctx, *updated)
}

// reconcilePlacement re-derives the student's placement flag after a
// rejection: the flag survives only while some other application of
// the same student is still Selected.
func (s *ApplicationService) reconcilePlacement(ctx context.Context, rejected *application.Application) error {
	siblings, err := s.applications.ListByStudent(ctx, rejected.StudentID)
	if err != nil {
		return err
	}
	for _, sibling := range siblings {
		if sibling.ID != rejected.ID && sibling.Status == application.StatusSelected {
			return nil
		}
	}
	return s.accounts.SetPlaced(ctx, rejected.StudentID, false)
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID common.UUID) ([]Detail, error) {
	items, err := s.applications.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.attachAll(ctx, items)
}

func (s *ApplicationService) ListByListing(ctx context.Context, listingID common.UUID) ([]Detail, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	items, err := s.applications.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return s.attachAll(ctx, items)
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]Detail, error) {
	items, err := s.applications.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachAll(ctx, items)
}

func (s *ApplicationService) attach(ctx context.Context, app application.Application) (*Detail, error) {
	detail := Detail{Application: app}
	if l, err := s.listings.GetByID(ctx, app.ListingID); err == nil {
		detail.Listing = listingSummary(l)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	if acc, err := s.accounts.GetByID(ctx, app.StudentID); err == nil {
		detail.Student = studentSummary(acc)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	return &detail, nil
}

func (s *ApplicationService) attachAll(ctx context.Context, items []application.Application) ([]Detail, error) {
	listings := make(map[common.UUID]*ListingSummary)
	students := make(map[common.UUID]*StudentSummary)
	details := make([]Detail, 0, len(items))
	for _, app := range items {
		detail := Detail{Application: app}
		summary, seen := listings[app.ListingID]
		if !seen {
			if l, err := s.listings.GetByID(ctx, app.ListingID); err == nil {
				summary = listingSummary(l)
			} else if !common.Is(err, common.CodeNotFound) {
				return nil, err
			}
			listings[app.ListingID] = summary
		}
		detail.Listing = summary
		student, seen := students[app.StudentID]
		if !seen {
			if acc, err := s.accounts.GetByID(ctx, app.StudentID); err == nil {
				student = studentSummary(acc)
			} else if !common.Is(err, common.CodeNotFound) {
				return nil, err
			}
			students[app.StudentID] = student
		}
		detail.Student = student
		details = append(details, detail)
	}
	return details, nil
}

func branchEligible(branch account.Branch, eligible []account.Branch) bool {
	for _, b := range eligible {
		if b == branch {
			return true
		}
	}
	return false
}

func listingSummary(l *listing.Listing) *ListingSummary {
	return &ListingSummary{
		ID:          l.ID,
		CompanyName: l.CompanyName,
		Role:        l.Role,
		Package:     l.Package,
		Location:    l.Location,
		Rounds:      l.Rounds,
	}
}

func studentSummary(acc *account.Account) *StudentSummary {
	return &StudentSummary{
		ID:       acc.ID,
		Name:     acc.Name,
		Email:    acc.Email,
		Branch:   acc.Branch,
		CGPA:     acc.CGPA,
		Skills:   acc.Skills,
		IsPlaced: acc.IsPlaced,
	}
}
