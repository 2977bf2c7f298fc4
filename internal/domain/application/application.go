package application

import (
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
)

type Status string

const (
	StatusApplied   Status = "Applied"
	StatusAptitude  Status = "Aptitude"
	StatusTechnical Status = "Technical"
	StatusHR        Status = "HR"
	StatusSelected  Status = "Selected"
	StatusRejected  Status = "Rejected"
)

func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusApplied, StatusAptitude, StatusTechnical, StatusHR, StatusSelected, StatusRejected:
		return Status(value), true
	default:
		return "", false
	}
}

type Application struct {
	ID           common.UUID `json:"id"`
	StudentID    common.UUID `json:"student_id"`
	ListingID    common.UUID `json:"listing_id"`
	Status       Status      `json:"status"`
	CurrentRound string      `json:"current_round"`
	Remarks      string      `json:"remarks"`
	AppliedAt    time.Time   `json:"applied_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
