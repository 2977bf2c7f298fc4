package app

import (
	"context"
	"testing"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/domain/application"
	"github.com/Vipul160305/placetrack/internal/domain/listing"
)

func seedStudent(t *testing.T, repo *fakeAccountRepo, branch account.Branch, cgpa float64) *account.Account {
	t.Helper()
	acc, err := repo.Create(context.Background(), account.Account{
		Name:   "Test Student",
		Email:  common.NewUUID().String() + "@student.com",
		Role:   account.RoleStudent,
		Branch: branch,
		CGPA:   cgpa,
	})
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return acc
}

func seedListing(t *testing.T, repo *fakeListingRepo, minCGPA float64, branches ...account.Branch) *listing.Listing {
	t.Helper()
	l, err := repo.Create(context.Background(), listing.Listing{
		CompanyName:      "Acme Corp",
		Role:             "Engineer",
		Package:          12,
		MinCGPA:          minCGPA,
		EligibleBranches: branches,
	})
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return l
}

func TestApplicationServiceApply(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 8.5)
	l := seedListing(t, listings, 8.0, account.BranchCSE, account.BranchIT)

	detail, err := service.Apply(context.Background(), student, l.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if detail.Status != application.StatusApplied {
		t.Fatalf("expected status Applied, got %s", detail.Status)
	}
	if detail.CurrentRound != "" {
		t.Fatalf("expected empty current round, got %q", detail.CurrentRound)
	}
	if detail.Listing == nil || detail.Listing.CompanyName != "Acme Corp" {
		t.Fatal("expected listing summary to be attached")
	}
	if detail.Student == nil || detail.Student.ID != student.ID {
		t.Fatal("expected student summary to be attached")
	}
}

func TestApplicationServiceApply_MissingListing(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)

	_, err := service.Apply(context.Background(), student, common.NewUUID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationServiceApply_BelowCGPA(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 7.9)
	l := seedListing(t, listings, 8.0, account.BranchCSE)

	_, err := service.Apply(context.Background(), student, l.ID)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestApplicationServiceApply_IneligibleBranch(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchME, 9)
	l := seedListing(t, listings, 8.0, account.BranchCSE, account.BranchIT)

	_, err := service.Apply(context.Background(), student, l.ID)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestApplicationServiceApply_Duplicate(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	l := seedListing(t, listings, 8.0, account.BranchCSE)

	if _, err := service.Apply(context.Background(), student, l.ID); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := service.Apply(context.Background(), student, l.ID)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestApplicationServiceApply_DuplicatePastPreCheck(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	l := seedListing(t, listings, 8.0, account.BranchCSE)

	if _, err := service.Apply(context.Background(), student, l.ID); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	applications.hideFinds = true
	_, err := service.Apply(context.Background(), student, l.ID)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict from storage constraint, got %v", err)
	}
}

func TestApplicationServiceUpdateStatus_InvalidStatus(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	_, err := service.UpdateStatus(context.Background(), common.NewUUID(), StatusUpdateInput{Status: "Shortlisted"})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceUpdateStatus_SelectedMarksPlaced(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	l := seedListing(t, listings, 8.0, account.BranchCSE)
	detail, err := service.Apply(context.Background(), student, l.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	round := "Final"
	remarks := "strong offer"
	updated, err := service.UpdateStatus(context.Background(), detail.ID, StatusUpdateInput{
		Status:       "Selected",
		CurrentRound: &round,
		Remarks:      &remarks,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != application.StatusSelected {
		t.Fatalf("expected Selected, got %s", updated.Status)
	}
	if updated.CurrentRound != "Final" || updated.Remarks != "strong offer" {
		t.Fatalf("expected fields applied verbatim, got %q %q", updated.CurrentRound, updated.Remarks)
	}
	after, err := accounts.GetByID(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if !after.IsPlaced {
		t.Fatal("expected student to be marked placed")
	}
	if updated.Student == nil || !updated.Student.IsPlaced {
		t.Fatal("expected attached summary to reflect placement")
	}
}

func TestApplicationServiceUpdateStatus_RejectedClearsPlacement(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	l := seedListing(t, listings, 8.0, account.BranchCSE)
	detail, err := service.Apply(context.Background(), student, l.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), detail.ID, StatusUpdateInput{Status: "Selected"}); err != nil {
		t.Fatalf("select: %v", err)
	}

	if _, err := service.UpdateStatus(context.Background(), detail.ID, StatusUpdateInput{Status: "Rejected"}); err != nil {
		t.Fatalf("reject: %v", err)
	}
	after, err := accounts.GetByID(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if after.IsPlaced {
		t.Fatal("expected placement flag to be cleared")
	}
}

func TestApplicationServiceUpdateStatus_RejectedKeepsOtherSelection(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	first := seedListing(t, listings, 8.0, account.BranchCSE)
	second := seedListing(t, listings, 8.0, account.BranchCSE)

	firstDetail, err := service.Apply(context.Background(), student, first.ID)
	if err != nil {
		t.Fatalf("apply first: %v", err)
	}
	secondDetail, err := service.Apply(context.Background(), student, second.ID)
	if err != nil {
		t.Fatalf("apply second: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), firstDetail.ID, StatusUpdateInput{Status: "Selected"}); err != nil {
		t.Fatalf("select first: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), secondDetail.ID, StatusUpdateInput{Status: "Selected"}); err != nil {
		t.Fatalf("select second: %v", err)
	}

	if _, err := service.UpdateStatus(context.Background(), secondDetail.ID, StatusUpdateInput{Status: "Rejected"}); err != nil {
		t.Fatalf("reject second: %v", err)
	}
	after, err := accounts.GetByID(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if !after.IsPlaced {
		t.Fatal("expected placement flag to survive while another selection stands")
	}
}

func TestApplicationServiceListByStudent_NewestFirst(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	first := seedListing(t, listings, 8.0, account.BranchCSE)
	second := seedListing(t, listings, 8.0, account.BranchCSE)

	if _, err := service.Apply(context.Background(), student, first.ID); err != nil {
		t.Fatalf("apply first: %v", err)
	}
	if _, err := service.Apply(context.Background(), student, second.ID); err != nil {
		t.Fatalf("apply second: %v", err)
	}

	details, err := service.ListByStudent(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(details))
	}
	if details[0].ListingID != second.ID || details[1].ListingID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", details[0].ListingID, details[1].ListingID)
	}
}

func TestApplicationServiceListByListing_MissingListing(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	_, err := service.ListByListing(context.Background(), common.NewUUID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationServiceListAll_ToleratesMissingReferences(t *testing.T) {
	accounts := newFakeAccountRepo()
	listings := newFakeListingRepo()
	applications := newFakeApplicationRepo()
	service := NewApplicationService(applications, listings, accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 9)
	l := seedListing(t, listings, 8.0, account.BranchCSE)
	if _, err := service.Apply(context.Background(), student, l.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := listings.Delete(context.Background(), l.ID); err != nil {
		t.Fatalf("delete listing: %v", err)
	}

	details, err := service.ListAll(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 application, got %d", len(details))
	}
	if details[0].Listing != nil {
		t.Fatal("expected nil listing summary for deleted listing")
	}
	if details[0].Student == nil {
		t.Fatal("expected student summary to remain")
	}
}
