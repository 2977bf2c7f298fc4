package app

import (
	"context"
	"testing"

	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
)

func TestAccountServiceUpdate_PartialMerge(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 8.0)

	cgpa := 9.2
	updated, err := service.Update(context.Background(), student.ID, UpdateInput{CGPA: &cgpa})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.CGPA != 9.2 {
		t.Fatalf("expected cgpa 9.2, got %v", updated.CGPA)
	}
	if updated.Name != student.Name {
		t.Fatalf("expected name unchanged, got %s", updated.Name)
	}
	if updated.Branch != account.BranchCSE {
		t.Fatalf("expected branch unchanged, got %s", updated.Branch)
	}
}

func TestAccountServiceUpdate_InvalidCGPA(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 8.0)

	cgpa := 10.5
	_, err := service.Update(context.Background(), student.ID, UpdateInput{CGPA: &cgpa})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAccountServiceUpdate_EmptyName(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 8.0)

	name := "   "
	_, err := service.Update(context.Background(), student.ID, UpdateInput{Name: &name})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAccountServiceList_InvalidRoleFilter(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	_, err := service.List(context.Background(), "professor", "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAccountServiceDelete(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 8.0)
	if err := service.Delete(context.Background(), student.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := accounts.GetByID(context.Background(), student.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected account gone, got %v", err)
	}
}

func TestAccountServiceDelete_AdminRefused(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	admin, err := accounts.Create(context.Background(), account.Account{
		Name: "Admin User", Email: "admin@demo.com", Role: account.RoleAdmin, Branch: account.BranchCSE,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if err := service.Delete(context.Background(), admin.ID); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := accounts.GetByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("expected admin to remain, got %v", err)
	}
}

func TestAccountServiceSetResume(t *testing.T) {
	accounts := newFakeAccountRepo()
	service := NewAccountService(accounts)

	student := seedStudent(t, accounts, account.BranchCSE, 8.0)
	if err := service.SetResume(context.Background(), student.ID, "uploads/abc.pdf"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	after, err := accounts.GetByID(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if after.Resume != "uploads/abc.pdf" {
		t.Fatalf("expected resume path stored, got %q", after.Resume)
	}

	if err := service.SetResume(context.Background(), common.NewUUID(), "uploads/x.pdf"); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
