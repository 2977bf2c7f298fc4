package account

import (
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleStudent, RoleOfficer, RoleAdmin:
		return Role(value), true
	default:
		return "", false
	}
}

type Branch string

const (
	BranchCSE   Branch = "CSE"
	BranchECE   Branch = "ECE"
	BranchEEE   Branch = "EEE"
	BranchME    Branch = "ME"
	BranchCE    Branch = "CE"
	BranchIT    Branch = "IT"
	BranchOther Branch = "Other"
)

// Branches is the fixed enumeration, in the order analytics reports it.
var Branches = []Branch{BranchCSE, BranchECE, BranchEEE, BranchME, BranchCE, BranchIT, BranchOther}

func ParseBranch(value string) (Branch, bool) {
	for _, b := range Branches {
		if Branch(value) == b {
			return b, true
		}
	}
	return "", false
}

type Account struct {
	ID           common.UUID `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Branch       Branch      `json:"branch"`
	CGPA         float64     `json:"cgpa"`
	Skills       []string    `json:"skills"`
	Resume       string      `json:"resume,omitempty"`
	IsPlaced     bool        `json:"is_placed"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
